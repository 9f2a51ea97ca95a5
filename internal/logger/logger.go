// Package logger sets up the process-wide structured logger. Level and
// format come from LOG_LEVEL (debug, info, warn, error) and LOG_FORMAT
// (text, json).
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup builds the default logger writing to stderr and installs it as
// slog's default.
func Setup() *slog.Logger {
	return SetupTo(os.Stderr)
}

// SetupTo is Setup with an explicit destination.
func SetupTo(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: Level(os.Getenv("LOG_LEVEL"))}

	var h slog.Handler
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	l := slog.New(h)
	slog.SetDefault(l)
	return l
}

// Level parses a level name. Unknown names mean info.
func Level(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
