package logging

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testStringer string

func (s testStringer) String() string { return string(s) }

func TestInitAndLoggingToFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "riskstats.log")

	if err := Init(logPath); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
		SetDebug(false)
	})

	LogEvent("hello %s", "world")
	LogDebug("hidden %d", 1)
	SetDebug(true)
	LogDebug("shown %d", 2)
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "hello world") {
		t.Fatalf("expected LogEvent content, got: %s", content)
	}
	if strings.Contains(content, "hidden 1") {
		t.Fatalf("expected debug output to be suppressed before SetDebug, got: %s", content)
	}
	if !strings.Contains(content, "[DEBUG] shown 2") {
		t.Fatalf("expected LogDebug content, got: %s", content)
	}
}

func TestBuildAnalysisMessageDefaults(t *testing.T) {
	msg := buildAnalysisMessage(" report ", " ", " model-a ", map[string]any{"n": 6})
	if !strings.Contains(msg, "[REPORT]") {
		t.Fatalf("expected uppercased component, got: %s", msg)
	}
	if !strings.Contains(msg, "source=inline") {
		t.Fatalf("expected default source, got: %s", msg)
	}
	if !strings.Contains(msg, "system=model-a") {
		t.Fatalf("expected trimmed system, got: %s", msg)
	}
	if !strings.Contains(msg, `payload={"n":6}`) {
		t.Fatalf("expected JSON payload, got: %s", msg)
	}

	msg = buildAnalysisMessage("compare", "a.json", "", nil)
	if strings.Contains(msg, "system=") {
		t.Fatalf("expected system to be omitted, got: %s", msg)
	}
}

func TestFormatPayloadVariants(t *testing.T) {
	if got := formatPayload(nil); got != "null" {
		t.Fatalf("nil payload: %s", got)
	}
	if got := formatPayload(" "); got != `""` {
		t.Fatalf("empty string payload: %s", got)
	}
	if got := formatPayload([]byte("hi")); got != "hi" {
		t.Fatalf("byte payload: %s", got)
	}
	if got := formatPayload(testStringer("ok")); got != "ok" {
		t.Fatalf("stringer payload: %s", got)
	}
}

func TestInitWithoutFileLeavesBufferUntouched(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	if err := Init(""); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	LogEvent("to stderr")
	if buf.Len() != 0 {
		t.Fatalf("expected previous writer to be replaced, got: %s", buf.String())
	}
}
