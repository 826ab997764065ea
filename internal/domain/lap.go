package domain

import "time"

// Lap is a checkpoint splitting elapsed time into consecutive intervals.
// Laps are immutable once recorded.
type Lap struct {
	ID           string
	Number       int // 1-based position in the ledger
	CumulativeMs int64
	DurationMs   int64
	CapturedAt   time.Time
}

// LastCumulative returns the cumulative time of the most recent lap, or 0.
func LastCumulative(laps []Lap) int64 {
	if len(laps) == 0 {
		return 0
	}
	return laps[len(laps)-1].CumulativeMs
}
