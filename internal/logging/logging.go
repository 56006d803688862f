// Package logging provides the shared structured logger.
//
// Log output goes to stderr so it never mixes with rendered references on
// stdout. The level is read once from REFTOOL_LOG_LEVEL (debug, info, warn,
// error) and defaults to warn, which surfaces skipped reference entries
// without chatter.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// EnvLevel names the environment variable holding the log level.
const EnvLevel = "REFTOOL_LOG_LEVEL"

var (
	initLogger sync.Once
	baseLogger *slog.Logger
)

// New returns a logger tagged with component.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		baseLogger = newLogger(os.Stderr, os.Getenv(EnvLevel))
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
}

func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
