package cli

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/lapwatch/internal/config"
	"github.com/alexanderramin/lapwatch/internal/domain"
	"github.com/alexanderramin/lapwatch/internal/service"
	"github.com/alexanderramin/lapwatch/internal/teatest"
	"github.com/rs/zerolog"
)

var testNow = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

// testApp returns an App wired for tests: fixed clock, in-memory bell and
// clipboard, exports into a temp dir.
func testApp(t *testing.T) (*App, *testSinks) {
	t.Helper()
	sinks := &testSinks{}
	cfg := config.DefaultConfig()
	cfg.ExportDir = t.TempDir()
	cfg.WatchSettings = false
	cfg.SettingsPath = ""

	app := &App{
		Config:   cfg,
		Settings: domain.DefaultSettings(),
		Logger:   zerolog.Nop(),
		NewStopwatch: func(s domain.Settings) *service.Stopwatch {
			seq := 0
			return service.NewStopwatch(
				service.WithSettings(s),
				service.WithNow(func() time.Time { return testNow }),
				service.WithIDGenerator(func() string {
					seq++
					return fmt.Sprintf("lap-%d", seq)
				}),
			)
		},
		Clipboard: func(text string) error {
			sinks.clipboard = append(sinks.clipboard, text)
			return nil
		},
		IsInteractive:     func() bool { return false },
		HasDarkBackground: func() bool { return true },
		Now:               func() time.Time { return testNow },
		Stdout:            &sinks.stdout,
		Stderr:            &sinks.stderr,
		Bell:              &sinks.bell,
	}
	return app, sinks
}

type testSinks struct {
	stdout    bytes.Buffer
	stderr    bytes.Buffer
	bell      bytes.Buffer
	clipboard []string
}

// TestDriver wraps teatest.Driver with access to appModel internals.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel without a tick scheduler; tests advance
// the clock with Tick.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	m := newAppModel(app, app.newStopwatch(), nil)
	d := teatest.New(t, m, teatest.WithSize(100, 30))
	d.DrainInit()
	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// Tick delivers n ticks for the current handle, as the tick scheduler would.
func (d *TestDriver) Tick(n int) {
	d.T.Helper()
	for i := 0; i < n; i++ {
		d.Send(tickMsg{handle: d.Stopwatch().Handle()})
	}
}

func (d *TestDriver) Stopwatch() *service.Stopwatch {
	return d.appModel().state.Stopwatch
}

func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

func (d *TestDriver) Flash() string {
	return d.appModel().state.Flash
}

func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
