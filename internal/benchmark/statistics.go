package benchmark

import "math"

// ComputeStatistics returns the average, minimum and maximum of samples.
// An empty sample set yields NaN for all three.
func ComputeStatistics(samples []float64) Statistics {
	if len(samples) == 0 {
		nan := math.NaN()
		return Statistics{Average: nan, Minimum: nan, Maximum: nan}
	}

	stats := Statistics{Minimum: samples[0], Maximum: samples[0]}

	var total float64
	for _, sample := range samples {
		total += sample
		if sample < stats.Minimum {
			stats.Minimum = sample
		}
		if sample > stats.Maximum {
			stats.Maximum = sample
		}
	}

	// Summation rounding can push the mean a few ulps outside [min, max].
	stats.Average = math.Min(math.Max(total/float64(len(samples)), stats.Minimum), stats.Maximum)
	return stats
}
