package benchmark

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Reporter receives suite progress in execution order.
type Reporter interface {
	TestStarted(name string)
	VersionStarted(test, version string)
	VersionFinished(result VersionResult)
}

// MultiReporter forwards every event to each reporter in turn.
type MultiReporter []Reporter

func (m MultiReporter) TestStarted(name string) {
	for _, r := range m {
		r.TestStarted(name)
	}
}

func (m MultiReporter) VersionStarted(test, version string) {
	for _, r := range m {
		r.VersionStarted(test, version)
	}
}

func (m MultiReporter) VersionFinished(result VersionResult) {
	for _, r := range m {
		r.VersionFinished(result)
	}
}

// TextReporter writes the human-readable report. Colour is applied only when
// fatih/color detects a terminal.
type TextReporter struct {
	w       io.Writer
	heading *color.Color
	label   *color.Color
	value   *color.Color
}

// NewTextReporter creates a TextReporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{
		w:       w,
		heading: color.New(color.FgCyan, color.Bold),
		label:   color.New(color.FgYellow),
		value:   color.New(color.FgGreen),
	}
}

func (r *TextReporter) TestStarted(name string) {
	fmt.Fprintf(r.w, "Running Test: %s\n", r.heading.Sprint(name))
}

func (r *TextReporter) VersionStarted(test, version string) {
	fmt.Fprintf(r.w, "  Running Algorithm Version: %s\n", r.label.Sprint(version))
}

func (r *TextReporter) VersionFinished(result VersionResult) {
	fmt.Fprintf(r.w, "    Average Time: %s\n", r.value.Sprint(FormatMillis(result.Stats.Average)))
	fmt.Fprintf(r.w, "    Fastest Time: %s\n", r.value.Sprint(FormatMillis(result.Stats.Minimum)))
	fmt.Fprintf(r.w, "    Slowest Time: %s\n", r.value.Sprint(FormatMillis(result.Stats.Maximum)))
}

// FormatMillis formats a millisecond value with two decimals and a unit suffix.
func FormatMillis(ms float64) string {
	return fmt.Sprintf("%.2fms", ms)
}

// JSONReporter writes one JSON object per finished version.
type JSONReporter struct {
	RunID string

	enc *json.Encoder
	err error
}

type jsonRecord struct {
	RunID   string    `json:"runId"`
	Test    string    `json:"test"`
	Version string    `json:"version"`
	Runs    int       `json:"runs"`
	Samples []float64 `json:"samples"`
	Average *float64  `json:"averageMs"`
	Minimum *float64  `json:"minimumMs"`
	Maximum *float64  `json:"maximumMs"`
}

// NewJSONReporter creates a JSONReporter with a fresh run id.
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{RunID: uuid.NewString(), enc: json.NewEncoder(w)}
}

func (r *JSONReporter) TestStarted(name string) {}

func (r *JSONReporter) VersionStarted(test, version string) {}

func (r *JSONReporter) VersionFinished(result VersionResult) {
	if r.err != nil {
		return
	}
	samples := result.Samples
	if samples == nil {
		samples = []float64{}
	}
	r.err = r.enc.Encode(jsonRecord{
		RunID:   r.RunID,
		Test:    result.Test,
		Version: result.Version,
		Runs:    result.Runs,
		Samples: samples,
		Average: finite(result.Stats.Average),
		Minimum: finite(result.Stats.Minimum),
		Maximum: finite(result.Stats.Maximum),
	})
}

// Err returns the first write error, if any.
func (r *JSONReporter) Err() error { return r.err }

// finite maps NaN and infinities to JSON null.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
