package service

import "github.com/alexanderramin/lapwatch/internal/domain"

// EventKind identifies what changed in the stopwatch.
type EventKind string

const (
	EventStarted         EventKind = "started"
	EventStopped         EventKind = "stopped"
	EventTick            EventKind = "tick"
	EventLapAdded        EventKind = "lap_added"
	EventReset           EventKind = "reset"
	EventSettingsChanged EventKind = "settings_changed"
)

// Event is delivered to listeners synchronously, on the goroutine that
// caused it.
type Event struct {
	Kind      EventKind
	ElapsedMs int64
	Lap       *domain.Lap // set for EventLapAdded
	AutoLap   bool        // the lap was captured by auto-lap
	Settings  *domain.Settings
}

// Listener receives stopwatch events.
type Listener func(Event)
