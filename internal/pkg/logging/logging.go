package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup initialises and returns the global slog default logger.
// level may be "debug", "info", "warn", or "error" (default "info").
// format may be "json" or "text" (default "text").
//
// Logs go to stderr so that report output on stdout stays machine-readable.
func Setup(level, format string) *slog.Logger {
	return SetupWriter(level, format, os.Stderr)
}

// SetupWriter is Setup with an explicit destination, for tests.
func SetupWriter(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}

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
