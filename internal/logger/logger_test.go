package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewWithWriterProductionWritesJSON(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	var buf bytes.Buffer
	log := NewWithWriter("production", &buf)

	log.Info().Str("range", "2024-03-01..2024-03-31").Msg("report generated")
	log.Debug().Msg("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}

	var event map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &event); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if event["message"] != "report generated" || event["service"] != "journey-report" || event["level"] != "info" {
		t.Errorf("event = %v", event)
	}
	if _, ok := event["time"]; !ok {
		t.Error("event has no timestamp")
	}
}

func TestNewWithWriterHonoursLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	var buf bytes.Buffer
	log := NewWithWriter("production", &buf)

	log.Info().Msg("dropped")
	log.Warn().Msg("kept")

	if out := buf.String(); strings.Contains(out, "dropped") || !strings.Contains(out, "kept") {
		t.Errorf("output = %q", out)
	}
}
