package appconfig

import (
	"fmt"
	"io"
	"strings"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	tests := "all"
	if len(cfg.Tests) > 0 {
		tests = strings.Join(cfg.Tests, ", ")
	}
	seed := "random"
	if cfg.Seed != 0 {
		seed = fmt.Sprintf("%d", cfg.Seed)
	}
	logFile := cfg.LogFilePath()
	if logFile == "" {
		logFile = "(none)"
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Runs:              %d\n", cfg.Runs)
	fmt.Fprintf(out, "  Seed:              %s\n", seed)
	fmt.Fprintf(out, "  Artists:           %d\n", cfg.ArtistCount)
	fmt.Fprintf(out, "  Stages:            %d\n", cfg.StageCount)
	fmt.Fprintf(out, "  Search Name:       %s\n", cfg.SearchName)
	fmt.Fprintf(out, "  Fibonacci N:       %d\n", cfg.FibonacciN)
	fmt.Fprintf(out, "  Duplicate Input:   %v\n", cfg.DuplicateInput)
	fmt.Fprintf(out, "  Common Inputs:     %v\n", cfg.CommonInputs)
	fmt.Fprintf(out, "  Lookup Latency:    %s\n", cfg.LookupLatency())
	fmt.Fprintf(out, "  Tests:             %s\n", tests)
	fmt.Fprintf(out, "  Output:            %s\n", cfg.Output)
	fmt.Fprintf(out, "  Debug:             %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Log File:          %s\n", logFile)
}
