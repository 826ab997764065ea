package cli

import (
	"io"

	"github.com/alexanderramin/lapwatch/internal/domain"
	"github.com/alexanderramin/lapwatch/internal/service"
)

const bell = "\a"

// bellListener rings the terminal bell for user-visible state changes
// while sound is enabled. Vibration has no terminal equivalent.
func bellListener(w io.Writer, settings func() domain.Settings) service.Listener {
	return func(ev service.Event) {
		if w == nil || !settings().SoundEnabled {
			return
		}
		switch ev.Kind {
		case service.EventStarted, service.EventStopped, service.EventLapAdded, service.EventReset:
			_, _ = io.WriteString(w, bell)
		}
	}
}
