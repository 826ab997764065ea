package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alexanderramin/lapwatch/internal/domain"
	"gopkg.in/yaml.v3"
)

// settingsFile mirrors domain.Settings with optional fields so a file may
// set only the values it cares about. Unknown keys, such as the exportDate
// and version written by a settings export, are ignored.
type settingsFile struct {
	SoundEnabled *bool   `yaml:"soundEnabled"`
	Precision    *string `yaml:"precision"`
	Theme        *string `yaml:"theme"`
	AutoLap      *bool   `yaml:"autoLap"`
	Vibration    *bool   `yaml:"vibration"`
}

// ParseSettings overlays the YAML (or JSON) document in data onto base.
func ParseSettings(data []byte, base domain.Settings) (domain.Settings, error) {
	var f settingsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return domain.Settings{}, fmt.Errorf("parsing settings: %w", err)
	}

	s := base
	if f.SoundEnabled != nil {
		s.SoundEnabled = *f.SoundEnabled
	}
	if f.Precision != nil {
		s.Precision = domain.Precision(*f.Precision)
	}
	if f.Theme != nil {
		s.Theme = domain.Theme(*f.Theme)
	}
	if f.AutoLap != nil {
		s.AutoLap = *f.AutoLap
	}
	if f.Vibration != nil {
		s.Vibration = *f.Vibration
	}
	if err := s.Validate(); err != nil {
		return domain.Settings{}, err
	}
	return s, nil
}

// LoadSettings reads the settings file at path on top of the defaults.
// A missing file (or empty path) yields the defaults.
func LoadSettings(path string) (domain.Settings, error) {
	defaults := domain.DefaultSettings()
	if path == "" {
		return defaults, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaults, nil
	}
	if err != nil {
		return domain.Settings{}, fmt.Errorf("reading settings file: %w", err)
	}
	s, err := ParseSettings(data, defaults)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
