package benchmark

import (
	"math"
	"testing"
)

func TestComputeStatistics(t *testing.T) {
	cases := []struct {
		name    string
		samples []float64
		want    Statistics
	}{
		{name: "single", samples: []float64{4}, want: Statistics{Average: 4, Minimum: 4, Maximum: 4}},
		{name: "spread", samples: []float64{2, 1, 3}, want: Statistics{Average: 2, Minimum: 1, Maximum: 3}},
		{name: "unsorted", samples: []float64{10, 0.5, 4.5}, want: Statistics{Average: 5, Minimum: 0.5, Maximum: 10}},
	}
	for _, tc := range cases {
		if got := ComputeStatistics(tc.samples); got != tc.want {
			t.Fatalf("%s: ComputeStatistics(%v) = %+v, want %+v", tc.name, tc.samples, got, tc.want)
		}
	}
}

func TestComputeStatisticsEmpty(t *testing.T) {
	got := ComputeStatistics(nil)
	if !math.IsNaN(got.Average) || !math.IsNaN(got.Minimum) || !math.IsNaN(got.Maximum) {
		t.Fatalf("expected NaN statistics, got %+v", got)
	}
}

func TestComputeStatisticsAverageWithinBounds(t *testing.T) {
	samples := []float64{0.1, 0.1, 0.1}
	got := ComputeStatistics(samples)
	if got.Average < got.Minimum || got.Average > got.Maximum {
		t.Fatalf("average %v outside [%v, %v]", got.Average, got.Minimum, got.Maximum)
	}
}
