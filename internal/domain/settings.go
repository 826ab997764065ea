package domain

import "errors"

// Settings is the user configuration shared read-only by every display
// consumer. It is replaced as a whole through the stopwatch's single
// settings-update entry point.
type Settings struct {
	SoundEnabled bool      `json:"soundEnabled" yaml:"soundEnabled"`
	Precision    Precision `json:"precision" yaml:"precision"`
	Theme        Theme     `json:"theme" yaml:"theme"`
	AutoLap      bool      `json:"autoLap" yaml:"autoLap"`
	Vibration    bool      `json:"vibration" yaml:"vibration"`
}

// DefaultSettings returns the settings a fresh process starts with.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled: true,
		Precision:    PrecisionCentiseconds,
		Theme:        ThemeSystem,
		AutoLap:      false,
		Vibration:    true,
	}
}

// Validate reports every invalid enum field.
func (s Settings) Validate() error {
	var errs []error
	if !s.Precision.Valid() {
		_, err := ParsePrecision(string(s.Precision))
		errs = append(errs, err)
	}
	if !s.Theme.Valid() {
		_, err := ParseTheme(string(s.Theme))
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
