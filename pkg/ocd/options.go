package ocd

import (
	"log/slog"
)

// Options configures Writer behavior.
type Options struct {
	// Logger receives debug events (exports, file writes, close).
	// Default: slog.Default()
	Logger *slog.Logger

	// DefaultCMYK is used by AddColor. The zero value means the default;
	// register an all-zero color with AddColorCMYK.
	// Default: 100/100/100/100
	DefaultCMYK CMYK
}

// DefaultOptions returns writer options with defaults.
func DefaultOptions() Options {
	return Options{
		Logger:      slog.Default(),
		DefaultCMYK: defaultCMYK,
	}
}
