package clock

// AutoLapIntervalMs is the elapsed time between automatic laps.
const AutoLapIntervalMs int64 = 60_000

// AutoLap decides when an automatic lap is due. Boundaries are measured in
// elapsed time, so pausing the clock pauses the auto-lap countdown too.
type AutoLap struct {
	intervalMs int64
	nextMs     int64 // zero means not armed
}

func NewAutoLap(intervalMs int64) *AutoLap {
	if intervalMs <= 0 {
		intervalMs = AutoLapIntervalMs
	}
	return &AutoLap{intervalMs: intervalMs}
}

// Arm schedules the next boundary strictly after elapsedMs. Call it when
// auto-lap is switched on mid-session.
func (a *AutoLap) Arm(elapsedMs int64) {
	a.nextMs = (elapsedMs/a.intervalMs + 1) * a.intervalMs
}

// Due reports whether elapsedMs has reached the armed boundary and, if so,
// moves the boundary forward by whole intervals.
func (a *AutoLap) Due(elapsedMs int64) bool {
	if a.nextMs == 0 {
		a.Arm(0)
	}
	if elapsedMs < a.nextMs {
		return false
	}
	a.Arm(elapsedMs)
	return true
}

// Reset disarms the countdown; the next Due re-arms from zero.
func (a *AutoLap) Reset() { a.nextMs = 0 }

// NextMs returns the elapsed time of the next boundary, or zero if unarmed.
func (a *AutoLap) NextMs() int64 { return a.nextMs }
