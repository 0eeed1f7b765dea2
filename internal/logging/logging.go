package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init routes the standard logger. With an empty path and debug off, log
// output is discarded so the benchmark report on stdout stays readable.
func Init(logPath string, debug bool) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	if debug {
		writers = append(writers, os.Stderr)
	}

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	if len(writers) == 0 {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

func Close() error {
	mu.Lock()
	defer mu.Unlock()
	log.SetOutput(os.Stderr)
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogSample records one timed repetition. Callers log after taking the end
// timestamp so the write never lands inside a measurement.
func LogSample(test, version string, run int, elapsedMs float64) {
	log.Println(buildSampleMessage(test, version, run, elapsedMs))
}

func buildSampleMessage(test, version string, run int, elapsedMs float64) string {
	testValue := strings.TrimSpace(test)
	if testValue == "" {
		testValue = "unknown"
	}
	versionValue := strings.TrimSpace(version)
	if versionValue == "" {
		versionValue = "unknown"
	}
	parts := []string{"[SAMPLE]"}
	parts = append(parts, fmt.Sprintf("test=%q", testValue))
	parts = append(parts, fmt.Sprintf("version=%q", versionValue))
	parts = append(parts, fmt.Sprintf("run=%d", run))
	parts = append(parts, fmt.Sprintf("elapsed=%.4fms", elapsedMs))
	return strings.Join(parts, " ")
}
