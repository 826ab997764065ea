package cli

import (
	"github.com/alexanderramin/lapwatch/internal/clock"
	"github.com/alexanderramin/lapwatch/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// flashMsg shows a one-line status message until the next key press.
type flashMsg struct {
	text string
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel pops the wizard view, then runs nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// tickMsg carries the clock handle it was scheduled for. A tick for a
// revoked handle is dropped by the stopwatch.
type tickMsg struct {
	handle clock.Handle
}

// settingsReloadedMsg delivers settings read from the watched settings file.
type settingsReloadedMsg struct {
	settings domain.Settings
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func flash(text string) tea.Cmd {
	return func() tea.Msg { return flashMsg{text: text} }
}
