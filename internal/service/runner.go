package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/lapwatch/internal/clock"
	"github.com/alexanderramin/lapwatch/internal/domain"
	"github.com/rs/zerolog"
)

// TickSource creates the periodic signal that drives a running stopwatch.
type TickSource interface {
	NewTicker(d time.Duration) (<-chan time.Time, func())
}

type realTickSource struct{}

func (realTickSource) NewTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Command is a user action applied on the runner's event loop.
type Command int

const (
	CommandStart Command = iota + 1
	CommandStop
	CommandToggle
	CommandLap
	CommandReset
)

func (c Command) String() string {
	switch c {
	case CommandStart:
		return "start"
	case CommandStop:
		return "stop"
	case CommandToggle:
		return "toggle"
	case CommandLap:
		return "lap"
	case CommandReset:
		return "reset"
	default:
		return "unknown"
	}
}

var ErrRunnerClosed = errors.New("runner is not running")

type RunnerOption func(*Runner)

func WithTickSource(ts TickSource) RunnerOption {
	return func(r *Runner) { r.ticks = ts }
}

func WithRunnerLogger(log zerolog.Logger) RunnerOption {
	return func(r *Runner) { r.log = log }
}

// Runner drives a Stopwatch without a TUI. Run owns the stopwatch: once it
// has started, every mutation must go through Do or ApplySettings so that
// it happens on the runner's goroutine.
type Runner struct {
	sw    *Stopwatch
	ticks TickSource
	log   zerolog.Logger

	cmds     chan commandReq
	settings chan domain.Settings
	inspect  chan inspectReq
	done     chan struct{}
}

type commandReq struct {
	cmd  Command
	done chan struct{}
}

type inspectReq struct {
	fn   func(*Stopwatch)
	done chan struct{}
}

func NewRunner(sw *Stopwatch, opts ...RunnerOption) *Runner {
	r := &Runner{
		sw:       sw,
		ticks:    realTickSource{},
		log:      zerolog.Nop(),
		cmds:     make(chan commandReq),
		settings: make(chan domain.Settings),
		inspect:  make(chan inspectReq),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Do hands cmd to the event loop and waits until it has been applied.
func (r *Runner) Do(ctx context.Context, cmd Command) error {
	req := commandReq{cmd: cmd, done: make(chan struct{})}
	select {
	case r.cmds <- req:
	case <-r.done:
		return ErrRunnerClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	<-req.done
	return nil
}

// ApplySettings hands new settings to the event loop. Invalid settings are
// logged and dropped by the loop.
func (r *Runner) ApplySettings(ctx context.Context, s domain.Settings) error {
	select {
	case r.settings <- s:
		return nil
	case <-r.done:
		return ErrRunnerClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Inspect runs fn on the event loop and waits for it to return. fn must
// only read from the stopwatch.
func (r *Runner) Inspect(ctx context.Context, fn func(*Stopwatch)) error {
	req := inspectReq{fn: fn, done: make(chan struct{})}
	select {
	case r.inspect <- req:
	case <-r.done:
		return ErrRunnerClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	<-req.done
	return nil
}

// Done is closed once Run has returned and the stopwatch is torn down.
func (r *Runner) Done() <-chan struct{} { return r.done }

// Run processes commands, settings and ticks until ctx is cancelled. On
// return the ticker is stopped and the stopwatch torn down.
func (r *Runner) Run(ctx context.Context) error {
	var (
		tickC  <-chan time.Time
		stopFn func()
		handle clock.Handle
	)
	halt := func() {
		if stopFn != nil {
			stopFn()
		}
		tickC, stopFn, handle = nil, nil, 0
	}
	syncTicker := func() {
		h := r.sw.Handle()
		switch {
		case h == 0:
			halt()
		case h != handle:
			halt()
			tickC, stopFn = r.ticks.NewTicker(clock.TickInterval)
			handle = h
		}
	}
	defer func() {
		halt()
		r.sw.Teardown()
		close(r.done)
	}()

	// The stopwatch may have been started before Run.
	syncTicker()

	for {
		select {
		case <-ctx.Done():
			return nil
		case req := <-r.cmds:
			r.apply(ctx, req.cmd)
			syncTicker()
			close(req.done)
		case s := <-r.settings:
			if err := r.sw.UpdateSettings(ctx, s); err != nil {
				r.log.Warn().Err(err).Msg("settings rejected")
			}
		case req := <-r.inspect:
			req.fn(r.sw)
			close(req.done)
		case <-tickC:
			if !r.sw.Tick(handle) {
				halt()
			}
		}
	}
}

func (r *Runner) apply(ctx context.Context, cmd Command) {
	switch cmd {
	case CommandStart:
		r.sw.Start(ctx)
	case CommandStop:
		r.sw.Stop(ctx)
	case CommandToggle:
		r.sw.Toggle(ctx)
	case CommandLap:
		r.sw.Lap(ctx)
	case CommandReset:
		if err := r.sw.Reset(ctx); err != nil {
			r.log.Debug().Err(err).Msg("reset ignored")
		}
	default:
		r.log.Warn().Stringer("command", cmd).Msg("unknown command")
	}
}
