package domain

import "time"

// SessionState is a point-in-time view of the stopwatch.
type SessionState struct {
	ElapsedMs    int64
	Running      bool
	Laps         []Lap
	SessionStart *time.Time
}

// Empty reports whether there is nothing worth exporting or sharing.
func (s SessionState) Empty() bool {
	return s.ElapsedMs == 0 && len(s.Laps) == 0
}
