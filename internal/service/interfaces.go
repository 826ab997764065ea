package service

import (
	"context"

	"github.com/alexanderramin/lapwatch/internal/clock"
	"github.com/alexanderramin/lapwatch/internal/domain"
	"github.com/alexanderramin/lapwatch/internal/exporter"
	"github.com/alexanderramin/lapwatch/internal/stats"
)

// StopwatchService is the core the presentation layer drives. It is not
// safe for concurrent use: every call must come from one event loop.
type StopwatchService interface {
	Start(ctx context.Context) (clock.Handle, bool)
	Stop(ctx context.Context) bool
	Toggle(ctx context.Context) (clock.Handle, bool)
	Lap(ctx context.Context) (domain.Lap, bool)
	Reset(ctx context.Context) error
	Tick(h clock.Handle) bool
	Teardown()

	Handle() clock.Handle
	Snapshot() domain.SessionState
	Summary() stats.Summary

	Settings() domain.Settings
	UpdateSettings(ctx context.Context, s domain.Settings) error

	Export(ctx context.Context) (*exporter.SessionDocument, error)
	ExportSettings(ctx context.Context) exporter.SettingsDocument
	ShareText() (string, error)

	Subscribe(l Listener) func()
}
