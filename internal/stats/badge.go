package stats

import "github.com/alexanderramin/lapwatch/internal/domain"

// Badge classifies a single lap relative to the rest of the session.
type Badge string

const (
	BadgeNone   Badge = ""
	BadgeBest   Badge = "best"
	BadgeWorst  Badge = "worst"
	BadgeFaster Badge = "faster"
	BadgeSlower Badge = "slower"
)

// MinLapsForBadges is the ledger size below which laps are not classified.
const MinLapsForBadges = 2

// Classify labels lap against laps. Best and worst take precedence over the
// comparison with the average; laps equal to the average get BadgeSlower.
func Classify(lap domain.Lap, laps []domain.Lap) Badge {
	if len(laps) < MinLapsForBadges {
		return BadgeNone
	}
	best, _ := BestLap(laps)
	worst, _ := WorstLap(laps)
	avg, _ := AverageLapDuration(laps)

	switch {
	case lap.DurationMs == best.DurationMs:
		return BadgeBest
	case lap.DurationMs == worst.DurationMs:
		return BadgeWorst
	case float64(lap.DurationMs) < avg:
		return BadgeFaster
	default:
		return BadgeSlower
	}
}

// Trend compares the running lap against the session average.
type Trend string

const (
	TrendUnknown Trend = ""
	TrendFaster  Trend = "faster"
	TrendSlower  Trend = "slower"
)

// CurrentLapTrend reports whether the lap in progress is on course to beat
// the average lap. It needs at least MinLapsForBadges completed laps.
func CurrentLapTrend(elapsedMs int64, laps []domain.Lap) Trend {
	if len(laps) < MinLapsForBadges {
		return TrendUnknown
	}
	avg, _ := AverageLapDuration(laps)
	if float64(CurrentLapMs(elapsedMs, laps)) < avg {
		return TrendFaster
	}
	return TrendSlower
}
