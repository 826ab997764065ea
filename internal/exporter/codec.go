package exporter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported format")

// Format is the on-disk encoding of an exported document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w %q (expected json or yaml)", ErrUnsupportedFormat, s)
}

// FormatForPath picks a format from a file extension, defaulting to JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

func (f Format) Ext() string {
	if f == FormatYAML {
		return ".yaml"
	}
	return ".json"
}

// SessionFileName returns the default file name for a session exported at now.
func SessionFileName(now time.Time, f Format) string {
	return "stopwatch-session-" + now.Format("2006-01-02") + f.Ext()
}

// SettingsFileName returns the default file name for a settings export.
func SettingsFileName(f Format) string {
	return "stopwatch-settings" + f.Ext()
}

// Encode writes v in the given format. JSON output is indented.
func Encode(w io.Writer, v any, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w %q", ErrUnsupportedFormat, f)
}

func decode(r io.Reader, v any, f Format) error {
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(v); err != nil {
			return fmt.Errorf("parsing json: %w", err)
		}
		return nil
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(v); err != nil {
			return fmt.Errorf("parsing yaml: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w %q", ErrUnsupportedFormat, f)
}

// DecodeSession reads a SessionDocument without validating it.
func DecodeSession(r io.Reader, f Format) (*SessionDocument, error) {
	var doc SessionDocument
	if err := decode(r, &doc, f); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DecodeSettings reads a SettingsDocument without validating it.
func DecodeSettings(r io.Reader, f Format) (SettingsDocument, error) {
	var doc SettingsDocument
	if err := decode(r, &doc, f); err != nil {
		return SettingsDocument{}, err
	}
	return doc, nil
}

// LoadSessionFile reads a session export, choosing the format from the
// file extension.
func LoadSessionFile(path string) (*SessionDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeSession(bytes.NewReader(data), FormatForPath(path))
}

// WriteFile encodes v into dir/name and returns the written path.
func WriteFile(dir, name string, v any, f Format) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, v, f); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}
