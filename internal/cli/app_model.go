package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/lapwatch/internal/cli/formatter"
	"github.com/alexanderramin/lapwatch/internal/service"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// appModel is the root bubbletea Model for the TUI.
// It owns the view stack and is the only place the stopwatch is mutated
// from, so every change happens on the bubbletea event loop.
type appModel struct {
	state     *SharedState
	viewStack []View
	help      help.Model
	quitting  bool
}

func newAppModel(app *App, sw *service.Stopwatch, schedule tickScheduler) appModel {
	state := &SharedState{
		App:          app,
		Stopwatch:    sw,
		scheduleTick: schedule,
	}
	sw.Subscribe(bellListener(app.Bell, sw.Settings))

	h := help.New()
	h.ShortSeparator = "  "

	m := appModel{
		state: state,
		help:  h,
	}
	m.viewStack = []View{newStopwatchView(state)}
	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle("lapwatch")}
	if v := m.activeView(); v != nil {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		if m.state.Stopwatch.Tick(msg.handle) {
			return m, m.state.nextTick(msg.handle)
		}
		return m, nil

	case settingsReloadedMsg:
		s := m.state.App.withOverrides(msg.settings)
		if err := m.state.Stopwatch.UpdateSettings(context.Background(), s); err != nil {
			m.state.Flash = formatter.StyleRed.Render("Settings file rejected: " + err.Error())
			return m, nil
		}
		applyTheme(m.state.App, s)
		m.state.Flash = formatter.Dim("Settings reloaded.")
		return m, nil

	case flashMsg:
		m.state.Flash = msg.text
		return m, nil

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case wizardCompleteMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, msg.nextCmd

	case tea.QuitMsg:
		m.quit()
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m *appModel) quit() {
	if !m.quitting {
		m.state.Stopwatch.Teardown()
	}
	m.quitting = true
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quit()
		return m, tea.Quit
	}

	m.state.Flash = ""

	// Forms receive every key, including q and esc.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch {
	case msg.String() == "q":
		m.quit()
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("lapwatch")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	if len(crumbs) > 0 {
		title += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return title + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))

	var hints string
	if v := m.activeView(); v != nil {
		hints = m.help.ShortHelpView(v.ShortHelp())
	}
	if len(m.viewStack) > 1 && !viewCapturesInput(m.activeView()) {
		hints += "  " + formatter.Dim("esc: back")
	}

	lines := []string{sep}
	if m.state.Flash != "" {
		lines = append(lines, m.state.Flash)
	}
	lines = append(lines, hints)
	return strings.Join(lines, "\n")
}

// viewCapturesInput reports whether v handles all key events itself,
// bypassing the global q and esc bindings.
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	return v.ID() == ViewSettings
}
