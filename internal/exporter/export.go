// Package exporter turns a stopwatch session into a self-contained document
// and reads such documents back.
package exporter

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/lapwatch/internal/domain"
)

var (
	ErrNothingToExport = errors.New("nothing to export")
	ErrInvalidDocument = errors.New("invalid document")
)

// ExportSession snapshots state and settings. It fails with
// ErrNothingToExport when no time has elapsed and no laps exist.
func ExportSession(state domain.SessionState, settings domain.Settings, now time.Time) (*SessionDocument, error) {
	if state.Empty() {
		return nil, ErrNothingToExport
	}
	doc := &SessionDocument{
		TotalTime:  state.ElapsedMs,
		Laps:       make([]LapRecord, 0, len(state.Laps)),
		ExportDate: now.UTC(),
		Settings:   settings,
	}
	if state.SessionStart != nil {
		t := state.SessionStart.UTC()
		doc.SessionStartTime = &t
	}
	for _, l := range state.Laps {
		doc.Laps = append(doc.Laps, LapRecord{
			ID:        LapID(l.ID),
			Time:      l.CumulativeMs,
			LapTime:   l.DurationMs,
			Timestamp: l.CapturedAt.UTC(),
		})
	}
	return doc, nil
}

// ExportSettings wraps settings with a schema version and export time.
func ExportSettings(settings domain.Settings, now time.Time) SettingsDocument {
	return SettingsDocument{
		Settings:   settings,
		ExportDate: now.UTC(),
		Version:    SettingsSchemaVersion,
	}
}

// ImportSession validates doc and rebuilds the session it describes. The
// returned state is always stopped.
func ImportSession(doc *SessionDocument) (domain.SessionState, domain.Settings, error) {
	if errs := ValidateSessionDocument(doc); len(errs) > 0 {
		return domain.SessionState{}, domain.Settings{}, fmt.Errorf("%w: %w", ErrInvalidDocument, errors.Join(errs...))
	}
	state := domain.SessionState{
		ElapsedMs: doc.TotalTime,
		Laps:      make([]domain.Lap, 0, len(doc.Laps)),
	}
	if doc.SessionStartTime != nil {
		t := doc.SessionStartTime.UTC()
		state.SessionStart = &t
	}
	for i, r := range doc.Laps {
		state.Laps = append(state.Laps, domain.Lap{
			ID:           string(r.ID),
			Number:       i + 1,
			CumulativeMs: r.Time,
			DurationMs:   r.LapTime,
			CapturedAt:   r.Timestamp.UTC(),
		})
	}
	return state, doc.Settings, nil
}

// ImportSettings validates a settings document and returns its settings.
func ImportSettings(doc SettingsDocument) (domain.Settings, error) {
	if err := doc.Settings.Validate(); err != nil {
		return domain.Settings{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return doc.Settings, nil
}
