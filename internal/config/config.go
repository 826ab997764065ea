// Package config loads lapwatch configuration from environment variables
// and the initial settings from a YAML (or JSON) file.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/lapwatch/internal/exporter"
)

// Config holds process-level configuration. Stopwatch settings live in the
// settings file, not here.
type Config struct {
	SettingsPath  string
	WatchSettings bool
	ExportDir     string
	ExportFormat  exporter.Format
	LogLevel      string
	LogFile       string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	cfg := Config{
		WatchSettings: true,
		ExportDir:     ".",
		ExportFormat:  exporter.FormatJSON,
		LogLevel:      "info",
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.SettingsPath = filepath.Join(home, ".lapwatch", "settings.yaml")
	}
	return cfg
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset or unparsable values.
func Load() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("LAPWATCH_SETTINGS"); v != "" {
		cfg.SettingsPath = v
	}
	if v := os.Getenv("LAPWATCH_WATCH_SETTINGS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.WatchSettings = b
		}
	}
	if v := os.Getenv("LAPWATCH_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
	if v := os.Getenv("LAPWATCH_EXPORT_FORMAT"); v != "" {
		if f, err := exporter.ParseFormat(v); err == nil {
			cfg.ExportFormat = f
		}
	}
	if v := os.Getenv("LAPWATCH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("LAPWATCH_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}

	return cfg
}
