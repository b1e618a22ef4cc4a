package utils

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	if _, err := NewLoggerWithOptions(LogOptions{Level: "chatty"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestLoggerRejectsUnknownFormat(t *testing.T) {
	if _, err := NewLoggerWithOptions(LogOptions{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestLoggerLevelFiltersDebug(t *testing.T) {
	l := NewLogger()
	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Debug("hidden %d", 1)
	if buf.Len() != 0 {
		t.Errorf("debug line written at info level: %q", buf.String())
	}

	l.Info("shown %d", 2)
	if !strings.Contains(buf.String(), "shown 2") {
		t.Errorf("info line missing: %q", buf.String())
	}
}

func TestLoggerJSONFields(t *testing.T) {
	l, err := NewLoggerWithOptions(LogOptions{Level: "debug", Format: "json"})
	if err != nil {
		t.Fatalf("NewLoggerWithOptions: %v", err)
	}
	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.WithFields(map[string]any{"request_id": "abc"}).WithField("status", 200).Warn("[api] %s", "request")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if line["message"] != "[api] request" {
		t.Errorf("message: got %v", line["message"])
	}
	if line["level"] != "warning" {
		t.Errorf("level: got %v", line["level"])
	}
	if line["request_id"] != "abc" {
		t.Errorf("request_id: got %v", line["request_id"])
	}
	if line["status"] != float64(200) {
		t.Errorf("status: got %v", line["status"])
	}
}
