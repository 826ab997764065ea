package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/alexanderramin/lapwatch/internal/config"
	"github.com/alexanderramin/lapwatch/internal/domain"
	"github.com/alexanderramin/lapwatch/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// App holds the dependencies shared by every command.
type App struct {
	Config   config.Config
	Settings domain.Settings
	Logger   zerolog.Logger

	// NewStopwatch builds a fresh stopwatch for the given settings.
	NewStopwatch func(settings domain.Settings) *service.Stopwatch

	// WatchSettings, when set, blocks until ctx is done and reports every
	// valid change of the settings file.
	WatchSettings func(ctx context.Context, onChange func(domain.Settings)) error

	Clipboard         func(text string) error
	IsInteractive     func() bool
	HasDarkBackground func() bool
	Now               func() time.Time

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Bell receives the terminal bell when sound is enabled.
	Bell io.Writer

	overrides *settingsFlags
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) stdout() io.Writer {
	if a.Stdout != nil {
		return a.Stdout
	}
	return os.Stdout
}

func (a *App) stderr() io.Writer {
	if a.Stderr != nil {
		return a.Stderr
	}
	return os.Stderr
}

func (a *App) stdin() io.Reader {
	if a.Stdin != nil {
		return a.Stdin
	}
	return os.Stdin
}

func (a *App) newStopwatch() *service.Stopwatch {
	if a.NewStopwatch != nil {
		return a.NewStopwatch(a.Settings)
	}
	return service.NewStopwatch(
		service.WithSettings(a.Settings),
		service.WithObserver(service.NewLogUseCaseObserver(a.Logger)),
	)
}

// withOverrides applies the command-line settings flags to settings loaded
// after startup, such as a reloaded settings file.
func (a *App) withOverrides(s domain.Settings) domain.Settings {
	if a.overrides == nil {
		return s
	}
	return a.overrides.overlay(s)
}

func (a *App) darkBackground() bool {
	if a.HasDarkBackground != nil {
		return a.HasDarkBackground()
	}
	return true
}

// NewRootCmd creates the top-level "lapwatch" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	overrides := &settingsFlags{}
	app.overrides = overrides

	root := &cobra.Command{
		Use:   "lapwatch",
		Short: "Terminal stopwatch with laps, statistics and exports",
		Long: `lapwatch is a stopwatch for the terminal. It records laps, shows
best/worst/average lap, consistency and pace, and exports sessions as
JSON or YAML.

Run without arguments in a terminal to open the interactive stopwatch.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := overrides.apply(cmd, app.Settings)
			if err != nil {
				return err
			}
			app.Settings = s
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return cmd.Help()
			}
			return runTUI(cmd.Context(), app)
		},
	}
	root.SetOut(app.stdout())
	root.SetErr(app.stderr())
	root.SetIn(app.stdin())

	overrides.register(root)

	root.AddCommand(
		newTUICmd(app),
		newTimeCmd(app),
		newStatsCmd(app),
		newShareCmd(app),
		newSettingsCmd(app),
	)

	return root
}
