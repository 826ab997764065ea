package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/lapwatch/internal/clock"
	"github.com/alexanderramin/lapwatch/internal/domain"
	"github.com/alexanderramin/lapwatch/internal/exporter"
	"github.com/alexanderramin/lapwatch/internal/ledger"
	"github.com/alexanderramin/lapwatch/internal/stats"
)

type Option func(*stopwatchConfig)

type stopwatchConfig struct {
	now       func() time.Time
	observer  UseCaseObserver
	settings  domain.Settings
	newID     func() string
	autoLapMs int64
}

// WithNow overrides the wall clock used for session start, lap capture and
// export stamps.
func WithNow(now func() time.Time) Option {
	return func(c *stopwatchConfig) { c.now = now }
}

func WithObserver(obs UseCaseObserver) Option {
	return func(c *stopwatchConfig) { c.observer = obs }
}

// WithSettings sets the initial settings. Invalid settings are replaced by
// the defaults.
func WithSettings(s domain.Settings) Option {
	return func(c *stopwatchConfig) { c.settings = s }
}

func WithIDGenerator(gen func() string) Option {
	return func(c *stopwatchConfig) { c.newID = gen }
}

// WithAutoLapInterval overrides the auto-lap interval in elapsed
// milliseconds.
func WithAutoLapInterval(ms int64) Option {
	return func(c *stopwatchConfig) { c.autoLapMs = ms }
}

// Stopwatch composes the clock, the lap ledger and the user's settings into
// the single object the TUI and the headless runner drive.
type Stopwatch struct {
	now      func() time.Time
	observer UseCaseObserver

	clock    *clock.Clock
	ledger   *ledger.Ledger
	autoLap  *clock.AutoLap
	settings domain.Settings

	listeners []listenerEntry
	nextID    int
}

type listenerEntry struct {
	id int
	fn Listener
}

var _ StopwatchService = (*Stopwatch)(nil)

func NewStopwatch(opts ...Option) *Stopwatch {
	cfg := stopwatchConfig{
		now:      time.Now,
		settings: domain.DefaultSettings(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.settings.Validate() != nil {
		cfg.settings = domain.DefaultSettings()
	}

	ledgerOpts := []ledger.Option{ledger.WithNow(cfg.now)}
	if cfg.newID != nil {
		ledgerOpts = append(ledgerOpts, ledger.WithIDGenerator(cfg.newID))
	}

	s := &Stopwatch{
		now:      cfg.now,
		observer: useCaseObserverOrNoop([]UseCaseObserver{cfg.observer}),
		clock:    clock.New(clock.WithNow(cfg.now)),
		ledger:   ledger.New(ledgerOpts...),
		autoLap:  clock.NewAutoLap(cfg.autoLapMs),
		settings: cfg.settings,
	}
	s.clock.Subscribe(clock.ObserverFunc(s.onTick))
	return s
}

func (s *Stopwatch) observe(ctx context.Context, name string, startedAt time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

// Start begins or resumes timing. It returns the tick handle and whether
// the clock was actually started.
func (s *Stopwatch) Start(ctx context.Context) (clock.Handle, bool) {
	startedAt := time.Now().UTC()
	h, started := s.clock.Start()
	if started {
		if s.settings.AutoLap && s.autoLap.NextMs() == 0 {
			s.autoLap.Arm(s.clock.ElapsedMs())
		}
		s.emit(Event{Kind: EventStarted, ElapsedMs: s.clock.ElapsedMs()})
	}
	s.observe(ctx, "start", startedAt, nil, map[string]any{
		"elapsed_ms": s.clock.ElapsedMs(),
		"changed":    started,
	})
	return h, started
}

// Stop pauses timing. It reports whether the clock was running.
func (s *Stopwatch) Stop(ctx context.Context) bool {
	startedAt := time.Now().UTC()
	stopped := s.clock.Stop()
	if stopped {
		s.emit(Event{Kind: EventStopped, ElapsedMs: s.clock.ElapsedMs()})
	}
	s.observe(ctx, "stop", startedAt, nil, map[string]any{
		"elapsed_ms": s.clock.ElapsedMs(),
		"changed":    stopped,
	})
	return stopped
}

// Toggle stops a running clock or starts a stopped one. The returned handle
// is zero after a stop.
func (s *Stopwatch) Toggle(ctx context.Context) (clock.Handle, bool) {
	if s.clock.Running() {
		return 0, s.Stop(ctx)
	}
	return s.Start(ctx)
}

// Lap records a manual lap at the current elapsed time. Lapping while
// stopped or at zero is a no-op.
func (s *Stopwatch) Lap(ctx context.Context) (lap domain.Lap, ok bool) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observe(ctx, "lap", startedAt, nil, map[string]any{
			"elapsed_ms": s.clock.ElapsedMs(),
			"recorded":   ok,
			"laps":       s.ledger.Len(),
		})
	}()
	return s.recordLap(false)
}

func (s *Stopwatch) recordLap(auto bool) (domain.Lap, bool) {
	lap, ok := s.ledger.RecordLap(s.clock.Running(), s.clock.ElapsedMs())
	if !ok {
		return domain.Lap{}, false
	}
	l := lap
	s.emit(Event{Kind: EventLapAdded, ElapsedMs: lap.CumulativeMs, Lap: &l, AutoLap: auto})
	return lap, true
}

// Reset clears elapsed time, laps and the session start. It fails with
// clock.ErrClockRunning while the clock runs.
func (s *Stopwatch) Reset(ctx context.Context) (err error) {
	startedAt := time.Now().UTC()
	laps := s.ledger.Len()
	defer func() {
		if errors.Is(err, clock.ErrClockRunning) {
			s.observe(ctx, "reset", startedAt, nil, map[string]any{"rejected": true})
			return
		}
		s.observe(ctx, "reset", startedAt, err, map[string]any{"laps_cleared": laps})
	}()
	if err := s.clock.Reset(); err != nil {
		return err
	}
	s.ledger.Clear()
	s.autoLap.Reset()
	s.emit(Event{Kind: EventReset})
	return nil
}

// Tick advances the clock for the given handle. It reports whether the tick
// was accepted; a false result means the driver should stop scheduling.
func (s *Stopwatch) Tick(h clock.Handle) bool {
	return s.clock.Tick(h)
}

func (s *Stopwatch) onTick(elapsedMs int64) {
	s.emit(Event{Kind: EventTick, ElapsedMs: elapsedMs})
	if s.settings.AutoLap && s.autoLap.Due(elapsedMs) {
		s.recordLap(true)
	}
}

// Teardown stops the clock and drops every listener. Nothing can mutate the
// session afterwards except another Start.
func (s *Stopwatch) Teardown() {
	s.clock.Teardown()
	s.listeners = nil
	s.clock.Subscribe(clock.ObserverFunc(s.onTick))
}

func (s *Stopwatch) Handle() clock.Handle { return s.clock.Handle() }

// Snapshot returns a copy of the current session.
func (s *Stopwatch) Snapshot() domain.SessionState {
	return domain.SessionState{
		ElapsedMs:    s.clock.ElapsedMs(),
		Running:      s.clock.Running(),
		Laps:         s.ledger.Laps(),
		SessionStart: s.clock.SessionStart(),
	}
}

func (s *Stopwatch) Summary() stats.Summary {
	return stats.Summarize(s.Snapshot(), s.now())
}

func (s *Stopwatch) Settings() domain.Settings { return s.settings }

// UpdateSettings replaces the settings after validating them. Turning
// auto-lap on arms the next boundary from the current elapsed time.
func (s *Stopwatch) UpdateSettings(ctx context.Context, next domain.Settings) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observe(ctx, "update-settings", startedAt, err, map[string]any{
			"precision": string(next.Precision),
			"theme":     string(next.Theme),
			"auto_lap":  next.AutoLap,
		})
	}()
	if err := next.Validate(); err != nil {
		return err
	}
	prev := s.settings
	s.settings = next
	switch {
	case next.AutoLap && !prev.AutoLap:
		s.autoLap.Arm(s.clock.ElapsedMs())
	case !next.AutoLap:
		s.autoLap.Reset()
	}
	if prev != next {
		snap := next
		s.emit(Event{Kind: EventSettingsChanged, ElapsedMs: s.clock.ElapsedMs(), Settings: &snap})
	}
	return nil
}

// Export builds a session document from the current state.
func (s *Stopwatch) Export(ctx context.Context) (doc *exporter.SessionDocument, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		if errors.Is(err, exporter.ErrNothingToExport) {
			s.observe(ctx, "export-session", startedAt, nil, map[string]any{"empty": true})
			return
		}
		s.observe(ctx, "export-session", startedAt, err, map[string]any{"laps": s.ledger.Len()})
	}()
	return exporter.ExportSession(s.Snapshot(), s.settings, s.now())
}

func (s *Stopwatch) ExportSettings(ctx context.Context) exporter.SettingsDocument {
	startedAt := time.Now().UTC()
	defer s.observe(ctx, "export-settings", startedAt, nil, nil)
	return exporter.ExportSettings(s.settings, s.now())
}

func (s *Stopwatch) ShareText() (string, error) {
	return exporter.ShareText(s.Snapshot())
}

// Subscribe registers l for every subsequent event and returns a function
// that removes it.
func (s *Stopwatch) Subscribe(l Listener) func() {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: l})
	return func() {
		for i, e := range s.listeners {
			if e.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Stopwatch) emit(ev Event) {
	entries := append([]listenerEntry(nil), s.listeners...)
	for _, e := range entries {
		e.fn(ev)
	}
}
