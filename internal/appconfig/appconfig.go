// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultRuns is the repetition count applied to every bundled version.
	defaultRuns = 5
	// defaultLookupLatencyMs is the simulated round trip of the remote lookup scenario.
	defaultLookupLatencyMs = 2
)

// Output modes accepted by the "output" setting.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputTUI  = "tui"
)

// Config represents the top-level application configuration.
type Config struct {
	Runs            int      `json:"runs"`
	Seed            uint64   `json:"seed"`
	ArtistCount     int      `json:"artistCount"`
	StageCount      int      `json:"stageCount"`
	SearchName      string   `json:"searchName"`
	FibonacciN      int      `json:"fibonacciN"`
	DuplicateInput  []int    `json:"duplicateInput"`
	CommonInputs    [][]int  `json:"commonInputs"`
	LookupLatencyMs int      `json:"lookupLatencyMs"`
	Tests           []string `json:"tests,omitempty"`
	Output          string   `json:"output"`
	Debug           bool     `json:"debug"`
	LogFile         string   `json:"logFile,omitempty"`
	ConfigPath      string   `json:"-"`
}

// Defaults returns the configuration used when no file or flag overrides a value.
func Defaults() Config {
	return Config{
		Runs:            defaultRuns,
		ArtistCount:     20,
		StageCount:      20,
		SearchName:      "Artist 10",
		FibonacciN:      35,
		DuplicateInput:  []int{1, 2, 3, 4, 5, 1},
		CommonInputs:    [][]int{{1, 2, 3, 4}, {3, 4, 5, 6}},
		LookupLatencyMs: defaultLookupLatencyMs,
		Output:          OutputText,
	}
}

// DefaultSettings returns Defaults keyed by setting name, for seeding viper.
func DefaultSettings() map[string]any {
	d := Defaults()
	return map[string]any{
		"runs":            d.Runs,
		"seed":            d.Seed,
		"artistCount":     d.ArtistCount,
		"stageCount":      d.StageCount,
		"searchName":      d.SearchName,
		"fibonacciN":      d.FibonacciN,
		"duplicateInput":  d.DuplicateInput,
		"commonInputs":    d.CommonInputs,
		"lookupLatencyMs": d.LookupLatencyMs,
		"tests":           []string{},
		"output":          d.Output,
		"debug":           d.Debug,
		"logFile":         d.LogFile,
	}
}

// Validate reports settings the scenarios cannot be built from. Runs is
// deliberately unchecked: values below 1 produce empty sample sets.
func (c Config) Validate() error {
	var problems []string
	switch c.Output {
	case OutputText, OutputJSON, OutputTUI:
	default:
		problems = append(problems, fmt.Sprintf("output must be one of %s, %s or %s, got %q", OutputText, OutputJSON, OutputTUI, c.Output))
	}
	if c.ArtistCount < 0 {
		problems = append(problems, "artistCount must not be negative")
	}
	if c.StageCount < 0 {
		problems = append(problems, "stageCount must not be negative")
	}
	if c.FibonacciN < 0 {
		problems = append(problems, "fibonacciN must not be negative")
	}
	if c.LookupLatencyMs < 0 {
		problems = append(problems, "lookupLatencyMs must not be negative")
	}
	if len(c.CommonInputs) != 2 {
		problems = append(problems, fmt.Sprintf("commonInputs must hold exactly two arrays, got %d", len(c.CommonInputs)))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// LookupLatency returns the simulated remote lookup latency.
func (c Config) LookupLatency() time.Duration {
	return time.Duration(c.LookupLatencyMs) * time.Millisecond
}

// ResolveSeed returns the configured seed, or a time-derived one when unset.
func (c Config) ResolveSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

// LogFilePath returns the path to the application log file. An empty path
// means log lines are only shown in debug mode.
func (c Config) LogFilePath() string {
	return strings.TrimSpace(c.LogFile)
}
