// Package benchmark times candidate algorithm versions and reports their
// average, fastest and slowest repetitions.
package benchmark

import (
	"context"
	"fmt"

	"github.com/mwiater/algobench/internal/logging"
	"github.com/mwiater/algobench/internal/timer"
)

// TestSuite runs registered tests in order. Every repetition of every
// version runs to completion before the next one starts.
type TestSuite struct {
	Reporter Reporter

	tests []*Test
	now   func() float64
}

// NewTestSuite creates an empty suite that reports to reporter.
func NewTestSuite(reporter Reporter) *TestSuite {
	return &TestSuite{Reporter: reporter, now: timer.Now}
}

// AddTest appends a test. Names are not checked for uniqueness.
func (s *TestSuite) AddTest(test *Test) {
	s.tests = append(s.tests, test)
}

// Tests returns the registered tests in execution order.
func (s *TestSuite) Tests() []*Test {
	return append([]*Test(nil), s.tests...)
}

// Run executes every version of every test and reports each version's
// statistics as soon as its repetitions finish. The first failing
// repetition aborts the run and is returned as a *RunError.
func (s *TestSuite) Run(ctx context.Context) error {
	reporter := s.Reporter
	if reporter == nil {
		reporter = MultiReporter{}
	}

	for _, test := range s.tests {
		if test == nil {
			continue
		}
		logging.LogEvent("running test %q with %d versions", test.Name, len(test.Versions))
		reporter.TestStarted(test.Name)

		for _, version := range test.Versions {
			if version == nil {
				continue
			}
			reporter.VersionStarted(test.Name, version.Name)
			result, err := s.runVersion(ctx, test.Name, version)
			if err != nil {
				logging.LogEvent("aborting run: %v", err)
				return err
			}
			logging.LogEvent("version %q finished: avg=%.4fms min=%.4fms max=%.4fms",
				version.Name, result.Stats.Average, result.Stats.Minimum, result.Stats.Maximum)
			reporter.VersionFinished(result)
		}
	}
	return nil
}

func (s *TestSuite) runVersion(ctx context.Context, testName string, version *AlgorithmVersion) (VersionResult, error) {
	samples := make([]float64, 0, max(version.Runs, 0))

	for i := 0; i < version.Runs; i++ {
		if err := ctx.Err(); err != nil {
			return VersionResult{}, &RunError{Test: testName, Version: version.Name, Run: i + 1, Err: err}
		}

		start := s.now()
		err := invokeOnce(ctx, version)
		end := s.now()
		if err != nil {
			return VersionResult{}, &RunError{Test: testName, Version: version.Name, Run: i + 1, Err: err}
		}

		elapsed := end - start
		samples = append(samples, elapsed)
		logging.LogSample(testName, version.Name, i+1, elapsed)
	}

	return VersionResult{
		Test:    testName,
		Version: version.Name,
		Runs:    version.Runs,
		Samples: samples,
		Stats:   ComputeStatistics(samples),
	}, nil
}

func invokeOnce(ctx context.Context, version *AlgorithmVersion) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	_, err = version.Invoke(ctx)
	return err
}
