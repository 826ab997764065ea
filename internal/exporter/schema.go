package exporter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/lapwatch/internal/domain"
)

// SettingsSchemaVersion tags settings exports.
const SettingsSchemaVersion = "1.0"

// SessionDocument is the exported form of a stopwatch session. Field names
// are the external contract read by other tooling.
type SessionDocument struct {
	TotalTime        int64           `json:"totalTime" yaml:"totalTime"`
	Laps             []LapRecord     `json:"laps" yaml:"laps"`
	SessionStartTime *time.Time      `json:"sessionStartTime" yaml:"sessionStartTime"`
	ExportDate       time.Time       `json:"exportDate" yaml:"exportDate"`
	Settings         domain.Settings `json:"settings" yaml:"settings"`
}

// LapRecord is one lap in a SessionDocument.
type LapRecord struct {
	ID        LapID     `json:"id" yaml:"id"`
	Time      int64     `json:"time" yaml:"time"`
	LapTime   int64     `json:"lapTime" yaml:"lapTime"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// SettingsDocument is the exported form of Settings on their own.
type SettingsDocument struct {
	domain.Settings `yaml:",inline"`
	ExportDate      time.Time `json:"exportDate" yaml:"exportDate"`
	Version         string    `json:"version" yaml:"version"`
}

// LapID is a lap identifier. It is written as a string but also accepts
// the numeric millisecond-timestamp ids used by older exports.
type LapID string

func (id *LapID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = LapID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("lap id: expected string or number, got %s", data)
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return fmt.Errorf("lap id: %w", err)
	}
	*id = LapID(n.String())
	return nil
}
