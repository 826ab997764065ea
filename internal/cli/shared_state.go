package cli

import (
	"time"

	"github.com/alexanderramin/lapwatch/internal/clock"
	"github.com/alexanderramin/lapwatch/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// tickScheduler returns the Cmd that delivers the next tick for h.
type tickScheduler func(h clock.Handle) tea.Cmd

func realTickScheduler(h clock.Handle) tea.Cmd {
	return tea.Tick(clock.TickInterval, func(time.Time) tea.Msg { return tickMsg{handle: h} })
}

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App       *App
	Stopwatch *service.Stopwatch

	// Terminal dimensions
	Width  int
	Height int

	// Flash is a transient status line, cleared on the next key press.
	Flash string

	scheduleTick tickScheduler
}

// nextTick schedules a tick for h, or nothing when h is zero.
func (s *SharedState) nextTick(h clock.Handle) tea.Cmd {
	if h == 0 || s.scheduleTick == nil {
		return nil
	}
	return s.scheduleTick(h)
}

// ContentHeight returns the lines left for the active view after the
// header and the status bar.
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 3 {
		return 3
	}
	return h
}
