// Package stats derives lap statistics. Every function is pure and is
// recomputed from the full lap list on each call; nothing is cached.
package stats

import (
	"math"

	"github.com/alexanderramin/lapwatch/internal/domain"
)

// RecentWindow is the number of trailing laps compared against the session
// average by Pace.
const RecentWindow = 3

// BestLap returns the lap with the shortest duration. On ties the earliest
// lap wins.
func BestLap(laps []domain.Lap) (domain.Lap, bool) {
	if len(laps) == 0 {
		return domain.Lap{}, false
	}
	best := laps[0]
	for _, l := range laps[1:] {
		if l.DurationMs < best.DurationMs {
			best = l
		}
	}
	return best, true
}

// WorstLap returns the lap with the longest duration. On ties the earliest
// lap wins.
func WorstLap(laps []domain.Lap) (domain.Lap, bool) {
	if len(laps) == 0 {
		return domain.Lap{}, false
	}
	worst := laps[0]
	for _, l := range laps[1:] {
		if l.DurationMs > worst.DurationMs {
			worst = l
		}
	}
	return worst, true
}

// AverageLapDuration returns the mean lap duration in milliseconds.
func AverageLapDuration(laps []domain.Lap) (float64, bool) {
	if len(laps) == 0 {
		return 0, false
	}
	return mean(laps), true
}

// Consistency returns 100 minus the coefficient of variation of lap
// durations as a percentage, floored at 0. It is not applicable without laps
// or when the average duration is zero.
func Consistency(laps []domain.Lap) (float64, bool) {
	if len(laps) == 0 {
		return 0, false
	}
	avg := mean(laps)
	if avg == 0 {
		return 0, false
	}
	var sumSq float64
	for _, l := range laps {
		d := float64(l.DurationMs) - avg
		sumSq += d * d
	}
	stdDev := math.Sqrt(sumSq / float64(len(laps)))
	return math.Max(0, 100-(stdDev/avg)*100), true
}

// Pace compares the average of the last RecentWindow laps with the
// all-time average, as a signed percentage. Positive means the recent laps
// are faster. With RecentWindow laps or fewer the window is the whole
// session and the result is 0.
func Pace(laps []domain.Lap) (float64, bool) {
	if len(laps) == 0 {
		return 0, false
	}
	avg := mean(laps)
	if avg == 0 {
		return 0, false
	}
	start := len(laps) - RecentWindow
	if start < 0 {
		start = 0
	}
	recent := mean(laps[start:])
	return (avg - recent) / avg * 100, true
}

// CurrentLapMs returns the time since the last lap (or since the session
// began when there are no laps).
func CurrentLapMs(elapsedMs int64, laps []domain.Lap) int64 {
	return elapsedMs - domain.LastCumulative(laps)
}

// ProgressToMinute returns how far elapsedMs is through the current minute,
// in percent.
func ProgressToMinute(elapsedMs int64) float64 {
	return float64(elapsedMs%60_000) / 60_000 * 100
}

func mean(laps []domain.Lap) float64 {
	var total int64
	for _, l := range laps {
		total += l.DurationMs
	}
	return float64(total) / float64(len(laps))
}
