package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/lapwatch/internal/cli/formatter"
	"github.com/alexanderramin/lapwatch/internal/clock"
	"github.com/alexanderramin/lapwatch/internal/exporter"
	"github.com/alexanderramin/lapwatch/internal/timefmt"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type pane int

const (
	paneStopwatch pane = iota
	paneLaps
	paneStats
)

var paneTitles = []string{"Stopwatch", "Laps", "Statistics"}

type stopwatchKeyMap struct {
	Toggle   key.Binding
	Lap      key.Binding
	Reset    key.Binding
	Settings key.Binding
	Export   key.Binding
	Copy     key.Binding
	Pane     key.Binding
	Quit     key.Binding
}

func newStopwatchKeyMap() stopwatchKeyMap {
	return stopwatchKeyMap{
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/stop")),
		Lap:      key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "lap")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Settings: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		Export:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		Copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		Pane:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "pane")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// stopwatchView is the home view: the clock face, the lap list and the
// statistics, one pane at a time.
type stopwatchView struct {
	state  *SharedState
	keys   stopwatchKeyMap
	pane   pane
	lapsVP viewport.Model
}

func newStopwatchView(state *SharedState) *stopwatchView {
	vp := viewport.New(0, 0)
	vp.KeyMap = viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		Up:       key.NewBinding(key.WithKeys("up", "k")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
	}
	return &stopwatchView{
		state:  state,
		keys:   newStopwatchKeyMap(),
		lapsVP: vp,
	}
}

func (v *stopwatchView) Init() tea.Cmd { return nil }

func (v *stopwatchView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.lapsVP.Width = msg.Width
		v.lapsVP.Height = v.state.ContentHeight() - 2
		return v, nil
	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *stopwatchView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	sw := v.state.Stopwatch

	switch {
	case key.Matches(msg, v.keys.Toggle):
		h, changed := sw.Toggle(ctx)
		if changed {
			return v, v.state.nextTick(h)
		}
		return v, nil

	case key.Matches(msg, v.keys.Lap):
		if lap, ok := sw.Lap(ctx); ok {
			return v, flash(formatter.Dim(fmt.Sprintf("Lap %d  %s", lap.Number, timefmt.Compact(lap.DurationMs))))
		}
		return v, nil

	case key.Matches(msg, v.keys.Reset):
		if err := sw.Reset(ctx); errors.Is(err, clock.ErrClockRunning) {
			return v, nil
		}
		v.lapsVP.GotoTop()
		return v, nil

	case key.Matches(msg, v.keys.Settings):
		return v, pushView(newSettingsView(v.state))

	case key.Matches(msg, v.keys.Export):
		return v, v.export(ctx)

	case key.Matches(msg, v.keys.Copy):
		return v, v.copyShareText()

	case key.Matches(msg, v.keys.Pane):
		v.pane = (v.pane + 1) % pane(len(paneTitles))
		return v, nil
	}

	if v.pane == paneLaps {
		var cmd tea.Cmd
		v.lapsVP, cmd = v.lapsVP.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *stopwatchView) export(ctx context.Context) tea.Cmd {
	app := v.state.App
	doc, err := v.state.Stopwatch.Export(ctx)
	if errors.Is(err, exporter.ErrNothingToExport) {
		return flash(formatter.Dim("Nothing to export yet."))
	}
	if err != nil {
		return flash(formatter.StyleRed.Render("Export failed: " + err.Error()))
	}
	format := app.Config.ExportFormat
	path, err := exporter.WriteFile(app.Config.ExportDir, exporter.SessionFileName(app.now(), format), doc, format)
	if err != nil {
		return flash(formatter.StyleRed.Render("Export failed: " + err.Error()))
	}
	return flash(formatter.StyleGreen.Render("Exported to " + path))
}

func (v *stopwatchView) copyShareText() tea.Cmd {
	text, err := v.state.Stopwatch.ShareText()
	if err != nil {
		return flash(formatter.Dim("Nothing to share yet."))
	}
	clip := v.state.App.Clipboard
	if clip == nil {
		return flash(text)
	}
	if err := clip(text); err != nil {
		return flash(formatter.StyleRed.Render("Copy failed: " + err.Error()))
	}
	return flash(formatter.StyleGreen.Render("Copied: ") + text)
}

func (v *stopwatchView) View() string {
	sw := v.state.Stopwatch
	sum := sw.Summary()
	precision := sw.Settings().Precision

	var body string
	switch v.pane {
	case paneLaps:
		vp := v.lapsVP
		vp.SetContent(formatter.FormatLapTable(sw.Snapshot().Laps, precision))
		body = vp.View()
	case paneStats:
		body = formatter.FormatStats(sum, precision, v.state.App.now())
	default:
		body = formatter.FormatClockFace(sum, precision)
	}
	return v.renderTabs() + "\n\n" + body
}

func (v *stopwatchView) renderTabs() string {
	tabs := make([]string, len(paneTitles))
	for i, t := range paneTitles {
		if pane(i) == v.pane {
			tabs[i] = formatter.StyleHeader.Render("[" + t + "]")
		} else {
			tabs[i] = formatter.Dim(" " + t + " ")
		}
	}
	return strings.Join(tabs, " ")
}

func (v *stopwatchView) ID() ViewID    { return ViewStopwatch }
func (v *stopwatchView) Title() string { return paneTitles[v.pane] }

func (v *stopwatchView) ShortHelp() []key.Binding {
	running := v.state.Stopwatch.Snapshot().Running
	bindings := []key.Binding{v.keys.Toggle}
	if running {
		bindings = append(bindings, v.keys.Lap)
	} else {
		bindings = append(bindings, v.keys.Reset)
	}
	return append(bindings, v.keys.Settings, v.keys.Export, v.keys.Copy, v.keys.Pane, v.keys.Quit)
}
