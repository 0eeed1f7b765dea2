package logging

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitAndLoggingToFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "algobench.log")

	if err := Init(logPath, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})

	LogEvent("hello %s", "world")
	LogSample("Artist Search", "Binary Search", 3, 0.25)
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "hello world") {
		t.Fatalf("expected LogEvent content, got: %s", content)
	}
	if !strings.Contains(content, `version="Binary Search" run=3`) {
		t.Fatalf("expected LogSample content, got: %s", content)
	}
}

func TestBuildSampleMessageDefaults(t *testing.T) {
	msg := buildSampleMessage(" ", "", 1, 1.5)
	if !strings.HasPrefix(msg, "[SAMPLE]") {
		t.Fatalf("expected sample tag, got: %s", msg)
	}
	if !strings.Contains(msg, `test="unknown"`) {
		t.Fatalf("expected default test, got: %s", msg)
	}
	if !strings.Contains(msg, `version="unknown"`) {
		t.Fatalf("expected default version, got: %s", msg)
	}
	if !strings.Contains(msg, "elapsed=1.5000ms") {
		t.Fatalf("expected formatted elapsed time, got: %s", msg)
	}
}

func TestInitDiscard(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	if err := Init("", false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})
	LogEvent("discard")
	if buf.Len() != 0 {
		t.Fatalf("expected log output discarded, got: %s", buf.String())
	}
}
