package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPrecision = errors.New("invalid precision")
	ErrInvalidTheme     = errors.New("invalid theme")
)

// Precision controls how many fractional digits the clock display shows.
type Precision string

const (
	PrecisionSeconds      Precision = "seconds"
	PrecisionCentiseconds Precision = "centiseconds"
	PrecisionMilliseconds Precision = "milliseconds"
)

// ValidPrecisions lists the accepted precision values in display order.
var ValidPrecisions = []Precision{PrecisionSeconds, PrecisionCentiseconds, PrecisionMilliseconds}

func (p Precision) Valid() bool {
	switch p {
	case PrecisionSeconds, PrecisionCentiseconds, PrecisionMilliseconds:
		return true
	}
	return false
}

// ParsePrecision converts a user-supplied string into a Precision.
func ParsePrecision(s string) (Precision, error) {
	p := Precision(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w %q (expected seconds, centiseconds or milliseconds)", ErrInvalidPrecision, s)
	}
	return p, nil
}

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// ValidThemes lists the accepted theme values in display order.
var ValidThemes = []Theme{ThemeLight, ThemeDark, ThemeSystem}

func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// ParseTheme converts a user-supplied string into a Theme.
func ParseTheme(s string) (Theme, error) {
	t := Theme(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w %q (expected light, dark or system)", ErrInvalidTheme, s)
	}
	return t, nil
}
