// Package logging constructs the zerolog loggers used across presetdeck.
//
// The TUI owns stdout, so interactive runs log to a file inside the data
// directory instead. Non-interactive subcommands may log to stderr.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// NewFileLogger returns a JSON logger appending to <dataDir>/presetdeck.log.
// If the file cannot be opened it falls back to stderr rather than failing:
// logging is never a reason to refuse to start.
func NewFileLogger(dataDir, level string) zerolog.Logger {
	var w io.Writer = os.Stderr
	if err := os.MkdirAll(dataDir, 0o755); err == nil {
		f, err := os.OpenFile(filepath.Join(dataDir, "presetdeck.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err == nil {
			w = f
		}
	}
	return zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger()
}

// NewStderrLogger returns a console-friendly logger for plain CLI commands.
func NewStderrLogger(level string) zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger()
}

// Nop returns a logger that discards everything. For tests.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

func parseLevel(level string) zerolog.Level {
	l, err := zerolog.ParseLevel(level)
	if err != nil || l == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return l
}
