package cli

import (
	"context"

	"github.com/alexanderramin/lapwatch/internal/cli/formatter"
	"github.com/alexanderramin/lapwatch/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// newSettingsView builds the settings dialog. The form edits a draft; the
// stopwatch only sees the result once the form is submitted.
func newSettingsView(state *SharedState) *wizardView {
	draft := state.Stopwatch.Settings()
	form := settingsForm(&draft)
	return newWizardView(state, ViewSettings, "Settings", form, func() tea.Cmd {
		return applySettings(state, draft)
	})
}

func settingsForm(draft *domain.Settings) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Precision]().
				Title("Precision").
				Options(
					huh.NewOption("Seconds (00:00)", domain.PrecisionSeconds),
					huh.NewOption("Centiseconds (00:00.00)", domain.PrecisionCentiseconds),
					huh.NewOption("Milliseconds (00:00.000)", domain.PrecisionMilliseconds),
				).
				Value(&draft.Precision),
			huh.NewSelect[domain.Theme]().
				Title("Theme").
				Options(
					huh.NewOption("System", domain.ThemeSystem),
					huh.NewOption("Light", domain.ThemeLight),
					huh.NewOption("Dark", domain.ThemeDark),
				).
				Value(&draft.Theme),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Sound").
				Description("Ring the terminal bell on start, stop, lap and reset.").
				Value(&draft.SoundEnabled),
			huh.NewConfirm().
				Title("Auto-lap").
				Description("Record a lap every minute of elapsed time.").
				Value(&draft.AutoLap),
			huh.NewConfirm().
				Title("Vibration").
				Description("Kept with the settings and exports.").
				Value(&draft.Vibration),
		),
	).WithTheme(lapwatchHuhTheme()).WithShowHelp(false)
}

// applySettings hands the draft to the stopwatch and restyles the UI.
func applySettings(state *SharedState, s domain.Settings) tea.Cmd {
	if err := state.Stopwatch.UpdateSettings(context.Background(), s); err != nil {
		return flash(formatter.StyleRed.Render("Settings rejected: " + err.Error()))
	}
	applyTheme(state.App, s)
	return flash(formatter.StyleGreen.Render("Settings saved for this session."))
}
