package cli

import (
	"context"

	"github.com/alexanderramin/lapwatch/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive stopwatch",
		Long: `Open the interactive stopwatch.

Keys: space start/stop, l lap, r reset (while stopped), s settings,
e export, c copy share text, tab switch pane, q quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), app)
		},
	}
}

func runTUI(ctx context.Context, app *App) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	applyTheme(app, app.Settings)
	sw := app.newStopwatch()
	defer sw.Teardown()

	m := newAppModel(app, sw, realTickScheduler)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if app.WatchSettings != nil && app.Config.WatchSettings {
		go func() {
			err := app.WatchSettings(ctx, func(s domain.Settings) {
				p.Send(settingsReloadedMsg{settings: s})
			})
			if err != nil {
				app.Logger.Warn().Err(err).Msg("settings watcher stopped")
			}
		}()
	}

	app.Logger.Info().Str("theme", string(app.Settings.Theme)).Msg("tui started")
	_, err := p.Run()
	return err
}
