package exporter

import (
	"fmt"

	"github.com/alexanderramin/lapwatch/internal/domain"
	"github.com/alexanderramin/lapwatch/internal/stats"
	"github.com/alexanderramin/lapwatch/internal/timefmt"
)

// ShareText returns the one-line summary handed to the clipboard or share
// target. The best-lap part is omitted when no laps were recorded.
func ShareText(state domain.SessionState) (string, error) {
	if state.Empty() {
		return "", ErrNothingToExport
	}
	text := fmt.Sprintf("Total Time: %s, Laps: %d", timefmt.Share(state.ElapsedMs), len(state.Laps))
	if best, ok := stats.BestLap(state.Laps); ok {
		text += ", Best Lap: " + timefmt.Share(best.DurationMs)
	}
	return text, nil
}
