package exporter

import (
	"fmt"
)

// ValidateSessionDocument checks an imported document before conversion.
// Returns a slice of all validation errors found.
func ValidateSessionDocument(doc *SessionDocument) []error {
	if doc == nil {
		return []error{fmt.Errorf("document is empty")}
	}
	var errs []error

	if doc.TotalTime < 0 {
		errs = append(errs, fmt.Errorf("totalTime: must not be negative, got %d", doc.TotalTime))
	}
	if err := doc.Settings.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("settings: %w", err))
	}

	seen := make(map[LapID]bool, len(doc.Laps))
	var prev int64
	for i, l := range doc.Laps {
		field := fmt.Sprintf("laps[%d]", i)
		if l.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", field))
		} else if seen[l.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", field, l.ID))
		}
		seen[l.ID] = true

		if l.Time <= 0 {
			errs = append(errs, fmt.Errorf("%s.time: must be positive, got %d", field, l.Time))
		}
		if l.Time < prev {
			errs = append(errs, fmt.Errorf("%s.time: %d is before previous lap %d", field, l.Time, prev))
		}
		if l.LapTime != l.Time-prev {
			errs = append(errs, fmt.Errorf("%s.lapTime: %d does not match time delta %d", field, l.LapTime, l.Time-prev))
		}
		if l.Time > doc.TotalTime {
			errs = append(errs, fmt.Errorf("%s.time: %d exceeds totalTime %d", field, l.Time, doc.TotalTime))
		}
		prev = l.Time
	}

	return errs
}
