package stats

import (
	"math"
	"time"

	"github.com/alexanderramin/lapwatch/internal/domain"
)

// Summary bundles every statistic the presentation layer shows. Optional
// metrics are nil when they are not applicable.
type Summary struct {
	TotalMs          int64
	Running          bool
	TotalLaps        int
	CurrentLapMs     int64
	ProgressToMinute float64
	CurrentLapTrend  Trend

	BestLap     *domain.Lap
	WorstLap    *domain.Lap
	AverageMs   *float64
	Consistency *float64 // rounded to a whole percent
	Pace        *float64 // rounded to a whole percent

	SessionStart    *time.Time
	SessionDuration time.Duration // wall time since SessionStart
}

// Summarize computes a Summary for state at wall time now.
func Summarize(state domain.SessionState, now time.Time) Summary {
	s := Summary{
		TotalMs:          state.ElapsedMs,
		Running:          state.Running,
		TotalLaps:        len(state.Laps),
		CurrentLapMs:     CurrentLapMs(state.ElapsedMs, state.Laps),
		ProgressToMinute: ProgressToMinute(state.ElapsedMs),
		CurrentLapTrend:  CurrentLapTrend(state.ElapsedMs, state.Laps),
		SessionStart:     state.SessionStart,
	}
	if best, ok := BestLap(state.Laps); ok {
		s.BestLap = &best
	}
	if worst, ok := WorstLap(state.Laps); ok {
		s.WorstLap = &worst
	}
	if avg, ok := AverageLapDuration(state.Laps); ok {
		s.AverageMs = &avg
	}
	if c, ok := Consistency(state.Laps); ok {
		c = math.Round(c)
		s.Consistency = &c
	}
	if p, ok := Pace(state.Laps); ok {
		p = math.Round(p)
		s.Pace = &p
	}
	if state.SessionStart != nil {
		s.SessionDuration = now.Sub(*state.SessionStart)
	}
	return s
}
