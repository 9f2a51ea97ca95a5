package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name     string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := Level(tt.name); got != tt.expected {
			t.Errorf("Level(%q): expected %v, got %v", tt.name, tt.expected, got)
		}
	}
}

func TestSetupJSON(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	var buf bytes.Buffer
	l := SetupTo(&buf)
	l.Debug("map_written", "objects", 3)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("Expected JSON log line, got %q: %v", buf.String(), err)
	}
	if rec["msg"] != "map_written" {
		t.Errorf("Expected msg 'map_written', got %v", rec["msg"])
	}
	if slog.Default() != l {
		t.Error("Setup should install its logger as the slog default")
	}
}

func TestSetupTextFiltersLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "")

	var buf bytes.Buffer
	l := SetupTo(&buf)
	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("Info record should be filtered at warn level")
	}
	if !strings.Contains(out, "msg=shown") {
		t.Errorf("Expected text record for warn, got %q", out)
	}
}
