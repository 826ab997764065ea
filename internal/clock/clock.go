// Package clock implements the stopwatch's elapsed-time source.
//
// A Clock does not own a goroutine or a timer. Whoever drives it (the TUI
// event loop or the headless runner) schedules ticks and passes back the
// Handle returned by Start. Stop, Reset and Teardown revoke that handle, so a
// tick that was already in flight when the clock stopped is discarded instead
// of mutating state. A Clock is not safe for concurrent use; all calls must
// come from the same event loop.
package clock

import (
	"errors"
	"time"
)

// TickInterval is the cadence at which elapsed time advances while running.
const TickInterval = 10 * time.Millisecond

// TickMs is TickInterval in milliseconds.
const TickMs = int64(TickInterval / time.Millisecond)

var ErrClockRunning = errors.New("clock is running; stop it before resetting")

// Handle identifies one running period of the clock. The zero Handle is
// never valid.
type Handle uint64

// Observer receives the new elapsed time after every accepted tick.
type Observer interface {
	OnTick(elapsedMs int64)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(elapsedMs int64)

func (f ObserverFunc) OnTick(elapsedMs int64) { f(elapsedMs) }

type Option func(*Clock)

// WithNow overrides the wall clock used to stamp the session start.
func WithNow(now func() time.Time) Option {
	return func(c *Clock) { c.now = now }
}

type subscription struct {
	id  int
	obs Observer
}

type Clock struct {
	now func() time.Time

	elapsedMs    int64
	running      bool
	sessionStart *time.Time

	handle Handle // current handle, zero while stopped
	issued Handle // last handle handed out

	observers []subscription
	nextSubID int
}

func New(opts ...Option) *Clock {
	c := &Clock{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins (or resumes) counting and returns the handle ticks must
// carry. The first start of a session records the session start time.
// Starting a running clock is a no-op that returns the current handle and
// false.
func (c *Clock) Start() (Handle, bool) {
	if c.running {
		return c.handle, false
	}
	c.running = true
	if c.sessionStart == nil {
		t := c.now().UTC()
		c.sessionStart = &t
	}
	c.issued++
	c.handle = c.issued
	return c.handle, true
}

// Stop freezes elapsed time and revokes the current handle.
// It reports whether the clock was running.
func (c *Clock) Stop() bool {
	if !c.running {
		return false
	}
	c.running = false
	c.handle = 0
	return true
}

// Reset zeroes the clock. It is rejected while running.
func (c *Clock) Reset() error {
	if c.running {
		return ErrClockRunning
	}
	c.elapsedMs = 0
	c.sessionStart = nil
	c.handle = 0
	return nil
}

// Tick advances elapsed time by one TickInterval and notifies observers.
// Ticks for a revoked or foreign handle are ignored; Tick reports whether
// the tick was applied, which tells the driver whether to schedule another.
func (c *Clock) Tick(h Handle) bool {
	if !c.running || h == 0 || h != c.handle {
		return false
	}
	c.elapsedMs += TickMs
	c.notify()
	return true
}

// Teardown stops the clock, revokes the handle and drops all observers.
// Nothing the clock owns can mutate state after Teardown returns.
func (c *Clock) Teardown() {
	c.running = false
	c.handle = 0
	c.observers = nil
}

// Subscribe registers an observer and returns a function that removes it.
func (c *Clock) Subscribe(obs Observer) func() {
	c.nextSubID++
	id := c.nextSubID
	c.observers = append(c.observers, subscription{id: id, obs: obs})
	return func() {
		for i, s := range c.observers {
			if s.id == id {
				c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

func (c *Clock) notify() {
	subs := append([]subscription(nil), c.observers...)
	for _, s := range subs {
		s.obs.OnTick(c.elapsedMs)
	}
}

func (c *Clock) ElapsedMs() int64 { return c.elapsedMs }

func (c *Clock) Running() bool { return c.running }

// Handle returns the current tick handle, or zero while stopped.
func (c *Clock) Handle() Handle { return c.handle }

// SessionStart returns a copy of the session start time, or nil before the
// first start of a session.
func (c *Clock) SessionStart() *time.Time {
	if c.sessionStart == nil {
		return nil
	}
	t := *c.sessionStart
	return &t
}
