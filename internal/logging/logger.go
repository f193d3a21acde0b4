// Package logging configures the process-wide slog logger.
//
// Logs are written to stderr by the CLI since stdout carries the report.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Setup installs a slog default logger writing to w.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
func Setup(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel converts a string log level to slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ForRun returns the default logger tagged with a fresh run_id.
func ForRun() *slog.Logger {
	return slog.Default().With("run_id", uuid.NewString())
}
