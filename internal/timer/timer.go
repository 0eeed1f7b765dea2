// Package timer exposes the monotonic millisecond clock used to time benchmark repetitions.
package timer

import "time"

// origin anchors Now. time.Since reads the monotonic clock, so wall-clock
// adjustments between two calls never make the difference negative.
var origin = time.Now()

// Now returns the milliseconds elapsed since process start as a float64.
// Subtracting two readings gives the elapsed time between them.
func Now() float64 {
	return Milliseconds(time.Since(origin))
}

// Milliseconds converts a duration to fractional milliseconds.
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
