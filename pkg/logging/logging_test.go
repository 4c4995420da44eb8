package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn", "json")

	logger.Info("dropped")
	logger.Warn("persist failed", "key", "@photo_billing_data")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "persist failed" {
		t.Errorf("msg = %v, want %q", entry["msg"], "persist failed")
	}
	if entry["key"] != "@photo_billing_data" {
		t.Errorf("key = %v", entry["key"])
	}
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "debug", "")

	logger.Debug("detected items", "count", 3)

	if !bytes.Contains(buf.Bytes(), []byte("detected items")) {
		t.Errorf("expected message in output, got %q", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("count=3")) {
		t.Errorf("expected attribute in output, got %q", buf.String())
	}
}
