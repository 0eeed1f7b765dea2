package benchmark

import (
	"context"
	"fmt"
)

// Invocation performs one repetition of a candidate algorithm. The returned
// value is discarded by the suite; only the elapsed time matters.
type Invocation func(ctx context.Context) (any, error)

// Pending is a result that is only available after an asynchronous wait.
// Values returned by a bound target that implement Pending are awaited
// before the end timestamp is taken.
type Pending interface {
	Await(ctx context.Context) (any, error)
}

// AlgorithmVersion is one candidate implementation bound to its arguments.
type AlgorithmVersion struct {
	Name string
	Runs int

	invoke Invocation
}

// Invoke runs the bound candidate once and waits for any pending result.
func (v *AlgorithmVersion) Invoke(ctx context.Context) (any, error) {
	if v.invoke == nil {
		return nil, nil
	}
	return v.invoke(ctx)
}

// Test groups the versions of one benchmark scenario. Versions run and are
// reported in insertion order.
type Test struct {
	Name     string
	Versions []*AlgorithmVersion
}

// NewTest creates a test holding the given versions in order.
func NewTest(name string, versions ...*AlgorithmVersion) *Test {
	return &Test{Name: name, Versions: append([]*AlgorithmVersion(nil), versions...)}
}

// Add appends a version to the end of the test.
func (t *Test) Add(v *AlgorithmVersion) {
	t.Versions = append(t.Versions, v)
}

// Statistics summarises a sample set, in milliseconds.
type Statistics struct {
	Average float64 `json:"average"`
	Minimum float64 `json:"minimum"`
	Maximum float64 `json:"maximum"`
}

// VersionResult holds the sample set and statistics for one version.
type VersionResult struct {
	Test    string     `json:"test"`
	Version string     `json:"version"`
	Runs    int        `json:"runs"`
	Samples []float64  `json:"samples"`
	Stats   Statistics `json:"stats"`
}

// RunError reports the repetition that aborted a suite run.
type RunError struct {
	Test    string
	Version string
	Run     int
	Err     error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("test %q version %q run %d: %v", e.Test, e.Version, e.Run, e.Err)
}

func (e *RunError) Unwrap() error { return e.Err }
