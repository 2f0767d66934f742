// Package logger provides configured zerolog loggers.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const service = "meetfocus"

// New returns a JSON logger on w at the given level ("debug", "info", ...).
// An unknown level falls back to info.
func New(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).Level(parseLevel(level)).With().
		Str("service", service).
		Timestamp().
		Logger()
}

// Console returns a human-readable logger for one-shot commands.
func Console(w io.Writer, level string) zerolog.Logger {
	return New(zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}, level)
}

// File opens path for appending and logs to it. The returned closer must be
// called on exit. An empty path gives a no-op logger; the terminal belongs
// to the UI while it runs.
func File(path, level string) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil), fmt.Errorf("open log file: %w", err)
	}
	return New(f, level), f, nil
}

func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || s == "" {
		return zerolog.InfoLevel
	}
	return lvl
}
