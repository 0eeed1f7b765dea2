package benchmark

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextReporterLayout(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	r := NewTextReporter(&out)
	r.TestStarted("Artist Search")
	r.VersionStarted("Artist Search", "Binary Search")
	r.VersionFinished(VersionResult{
		Test:    "Artist Search",
		Version: "Binary Search",
		Stats:   Statistics{Average: 1.234, Minimum: 0.5, Maximum: 2},
	})

	want := strings.Join([]string{
		"Running Test: Artist Search",
		"  Running Algorithm Version: Binary Search",
		"    Average Time: 1.23ms",
		"    Fastest Time: 0.50ms",
		"    Slowest Time: 2.00ms",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestFormatMillis(t *testing.T) {
	assert.Equal(t, "0.00ms", FormatMillis(0))
	assert.Equal(t, "12.35ms", FormatMillis(12.345))
	assert.Equal(t, "NaNms", FormatMillis(math.NaN()))
}

func TestJSONReporterWritesOneRecordPerVersion(t *testing.T) {
	var out bytes.Buffer
	r := NewJSONReporter(&out)
	_, err := uuid.Parse(r.RunID)
	require.NoError(t, err)

	r.TestStarted("t")
	r.VersionStarted("t", "v1")
	r.VersionFinished(VersionResult{Test: "t", Version: "v1", Runs: 2, Samples: []float64{1, 3}, Stats: Statistics{Average: 2, Minimum: 1, Maximum: 3}})
	r.VersionFinished(VersionResult{Test: "t", Version: "v2", Runs: 0, Stats: ComputeStatistics(nil)})
	require.NoError(t, r.Err())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, r.RunID, first["runId"])
	assert.Equal(t, "v1", first["version"])
	assert.Equal(t, 2.0, first["averageMs"])

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Nil(t, second["averageMs"])
	assert.Equal(t, []any{}, second["samples"])
}

func TestMultiReporterPreservesOrder(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	m := MultiReporter{a, b}
	m.TestStarted("t")
	m.VersionStarted("t", "v")
	m.VersionFinished(VersionResult{Test: "t", Version: "v"})
	assert.Equal(t, a.events, b.events)
	assert.Equal(t, []string{"test:t", "start:t.v", "done:t.v"}, a.events)
}
