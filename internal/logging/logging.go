// Package logging builds the process logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const consoleTimeFormat = "15:04:05.000"

// Config selects the log sink.
type Config struct {
	Level string
	// File, when set, receives JSON lines and takes precedence over Console.
	File string
	// Console enables human-readable output on Stderr. The TUI leaves it off
	// because the terminal belongs to the UI.
	Console bool
	Stderr  io.Writer
}

// New returns a logger and a close function for any file it opened. With
// no sink configured the logger discards everything.
func New(cfg Config) (zerolog.Logger, func() error, error) {
	level := ParseLevel(cfg.Level, zerolog.InfoLevel)
	noop := func() error { return nil }

	if strings.TrimSpace(cfg.File) != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), noop, err
		}
		zl := zerolog.New(f).Level(level).With().Timestamp().Logger()
		return zl, f.Close, nil
	}

	if cfg.Console {
		out := cfg.Stderr
		if out == nil {
			out = os.Stderr
		}
		cw := zerolog.ConsoleWriter{Out: out, TimeFormat: consoleTimeFormat}
		zl := zerolog.New(cw).Level(level).With().Timestamp().Logger()
		return zl, noop, nil
	}

	return zerolog.Nop(), noop, nil
}

// ParseLevel maps a level name to a zerolog level, returning def for
// unknown names.
func ParseLevel(s string, def zerolog.Level) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return def
	}
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.DurationFieldUnit = time.Millisecond
}
