// Package ledger records lap boundaries for a stopwatch session.
package ledger

import (
	"time"

	"github.com/alexanderramin/lapwatch/internal/domain"
	"github.com/google/uuid"
)

type Option func(*Ledger)

// WithNow overrides the wall clock used to stamp CapturedAt.
func WithNow(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithIDGenerator overrides lap id generation.
func WithIDGenerator(gen func() string) Option {
	return func(l *Ledger) { l.newID = gen }
}

// Ledger is an append-only, ordered record of laps. It is not safe for
// concurrent use.
type Ledger struct {
	now   func() time.Time
	newID func() string

	laps           []domain.Lap
	lastCumulative int64
}

func New(opts ...Option) *Ledger {
	l := &Ledger{now: time.Now, newID: newLapID}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// newLapID returns a UUIDv7, which sorts by creation time. It falls back to
// a random UUID if the v7 generator fails.
func newLapID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// RecordLap appends a lap at currentElapsedMs. It is a silent no-op when
// the clock is not running, at zero elapsed time, or when currentElapsedMs
// is behind the previous lap. The returned bool reports whether a lap was
// recorded.
func (l *Ledger) RecordLap(running bool, currentElapsedMs int64) (domain.Lap, bool) {
	if !running || currentElapsedMs <= 0 || currentElapsedMs < l.lastCumulative {
		return domain.Lap{}, false
	}
	lap := domain.Lap{
		ID:           l.newID(),
		Number:       len(l.laps) + 1,
		CumulativeMs: currentElapsedMs,
		DurationMs:   currentElapsedMs - l.lastCumulative,
		CapturedAt:   l.now().UTC(),
	}
	l.laps = append(l.laps, lap)
	l.lastCumulative = currentElapsedMs
	return lap, true
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.laps = nil
	l.lastCumulative = 0
}

// Laps returns a copy of the recorded laps in chronological order.
func (l *Ledger) Laps() []domain.Lap {
	return append([]domain.Lap(nil), l.laps...)
}

func (l *Ledger) Len() int { return len(l.laps) }
