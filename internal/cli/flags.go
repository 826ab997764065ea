package cli

import (
	"github.com/alexanderramin/lapwatch/internal/domain"
	"github.com/alexanderramin/lapwatch/internal/exporter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// precisionValue is a pflag.Value restricted to the known precisions.
type precisionValue struct {
	value domain.Precision
}

var _ pflag.Value = (*precisionValue)(nil)

func (p *precisionValue) String() string { return string(p.value) }
func (p *precisionValue) Type() string   { return "precision" }

func (p *precisionValue) Set(s string) error {
	v, err := domain.ParsePrecision(s)
	if err != nil {
		return err
	}
	p.value = v
	return nil
}

// themeValue is a pflag.Value restricted to the known themes.
type themeValue struct {
	value domain.Theme
}

var _ pflag.Value = (*themeValue)(nil)

func (t *themeValue) String() string { return string(t.value) }
func (t *themeValue) Type() string   { return "theme" }

func (t *themeValue) Set(s string) error {
	v, err := domain.ParseTheme(s)
	if err != nil {
		return err
	}
	t.value = v
	return nil
}

// formatValue is a pflag.Value for export formats.
type formatValue struct {
	value exporter.Format
}

var _ pflag.Value = (*formatValue)(nil)

func (f *formatValue) String() string { return string(f.value) }
func (f *formatValue) Type() string   { return "format" }

func (f *formatValue) Set(s string) error {
	v, err := exporter.ParseFormat(s)
	if err != nil {
		return err
	}
	f.value = v
	return nil
}

// settingsFlags are the persistent flags that override the settings file
// for one run.
type settingsFlags struct {
	precision precisionValue
	theme     themeValue
	autoLap   bool
	sound     bool

	precisionFlag *pflag.Flag
	themeFlag     *pflag.Flag
	autoLapFlag   *pflag.Flag
	soundFlag     *pflag.Flag
}

func (f *settingsFlags) register(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.Var(&f.precision, "precision", "display precision: seconds, centiseconds or milliseconds")
	fs.Var(&f.theme, "theme", "color theme: light, dark or system")
	fs.BoolVar(&f.autoLap, "auto-lap", false, "record a lap automatically every minute")
	fs.BoolVar(&f.sound, "sound", true, "ring the terminal bell on start, stop, lap and reset")

	f.precisionFlag = fs.Lookup("precision")
	f.themeFlag = fs.Lookup("theme")
	f.autoLapFlag = fs.Lookup("auto-lap")
	f.soundFlag = fs.Lookup("sound")
}

// apply returns base with every explicitly set flag applied on top.
func (f *settingsFlags) apply(_ *cobra.Command, base domain.Settings) (domain.Settings, error) {
	s := f.overlay(base)
	return s, s.Validate()
}

// overlay copies the explicitly set flags onto base.
func (f *settingsFlags) overlay(base domain.Settings) domain.Settings {
	s := base
	if f.precisionFlag != nil && f.precisionFlag.Changed {
		s.Precision = f.precision.value
	}
	if f.themeFlag != nil && f.themeFlag.Changed {
		s.Theme = f.theme.value
	}
	if f.autoLapFlag != nil && f.autoLapFlag.Changed {
		s.AutoLap = f.autoLap
	}
	if f.soundFlag != nil && f.soundFlag.Changed {
		s.SoundEnabled = f.sound
	}
	return s
}
