package exporter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/lapwatch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sessionStart = time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)
	exportedAt   = time.Date(2025, 3, 15, 9, 31, 0, 0, time.UTC)
)

func sampleState() domain.SessionState {
	start := sessionStart
	return domain.SessionState{
		ElapsedMs: 5000,
		Laps: []domain.Lap{
			{ID: "lap-1", Number: 1, CumulativeMs: 1500, DurationMs: 1500, CapturedAt: sessionStart.Add(1500 * time.Millisecond)},
			{ID: "lap-2", Number: 2, CumulativeMs: 4200, DurationMs: 2700, CapturedAt: sessionStart.Add(4200 * time.Millisecond)},
		},
		SessionStart: &start,
	}
}

func sampleSettings() domain.Settings {
	s := domain.DefaultSettings()
	s.Precision = domain.PrecisionMilliseconds
	s.Theme = domain.ThemeDark
	s.AutoLap = true
	return s
}

func TestExportSession_NothingToExport(t *testing.T) {
	_, err := ExportSession(domain.SessionState{}, domain.DefaultSettings(), exportedAt)
	assert.ErrorIs(t, err, ErrNothingToExport)
}

func TestExportSession_ElapsedWithoutLapsIsExportable(t *testing.T) {
	doc, err := ExportSession(domain.SessionState{ElapsedMs: 10}, domain.DefaultSettings(), exportedAt)
	require.NoError(t, err)
	assert.Equal(t, int64(10), doc.TotalTime)
	assert.Empty(t, doc.Laps)
	assert.Nil(t, doc.SessionStartTime)
}

func TestExportSession_JSONContract(t *testing.T) {
	doc, err := ExportSession(sampleState(), sampleSettings(), exportedAt)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, doc, FormatJSON))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.Equal(t, 5000.0, raw["totalTime"])
	assert.Equal(t, "2025-03-15T09:30:00Z", raw["sessionStartTime"])
	assert.Equal(t, "2025-03-15T09:31:00Z", raw["exportDate"])

	laps := raw["laps"].([]any)
	require.Len(t, laps, 2)
	second := laps[1].(map[string]any)
	assert.Equal(t, "lap-2", second["id"])
	assert.Equal(t, 4200.0, second["time"])
	assert.Equal(t, 2700.0, second["lapTime"])
	assert.Equal(t, "2025-03-15T09:30:04.2Z", second["timestamp"])

	settings := raw["settings"].(map[string]any)
	assert.Equal(t, map[string]any{
		"soundEnabled": true,
		"precision":    "milliseconds",
		"theme":        "dark",
		"autoLap":      true,
		"vibration":    true,
	}, settings)
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			state := sampleState()
			settings := sampleSettings()
			doc, err := ExportSession(state, settings, exportedAt)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, doc, f))
			decoded, err := DecodeSession(&buf, f)
			require.NoError(t, err)

			gotState, gotSettings, err := ImportSession(decoded)
			require.NoError(t, err)
			assert.Equal(t, settings, gotSettings)
			assert.Equal(t, state.ElapsedMs, gotState.ElapsedMs)
			assert.False(t, gotState.Running)
			require.NotNil(t, gotState.SessionStart)
			assert.True(t, state.SessionStart.Equal(*gotState.SessionStart))
			require.Len(t, gotState.Laps, len(state.Laps))
			for i := range state.Laps {
				want, got := state.Laps[i], gotState.Laps[i]
				assert.Equal(t, want.ID, got.ID)
				assert.Equal(t, want.Number, got.Number)
				assert.Equal(t, want.CumulativeMs, got.CumulativeMs)
				assert.Equal(t, want.DurationMs, got.DurationMs)
				assert.True(t, want.CapturedAt.Equal(got.CapturedAt))
			}
		})
	}
}

func TestImportSession_AcceptsNumericLapIDs(t *testing.T) {
	input := `{
  "totalTime": 4200,
  "laps": [
    {"id": 1741944601500, "time": 1500, "lapTime": 1500, "timestamp": "2025-03-15T09:30:01.500Z"},
    {"id": 1741944604200, "time": 4200, "lapTime": 2700, "timestamp": "2025-03-15T09:30:04.200Z"}
  ],
  "sessionStartTime": null,
  "exportDate": "2025-03-15T09:31:00.000Z",
  "settings": {"soundEnabled": true, "precision": "centiseconds", "theme": "system", "autoLap": false, "vibration": true}
}`
	doc, err := DecodeSession(strings.NewReader(input), FormatJSON)
	require.NoError(t, err)

	state, settings, err := ImportSession(doc)
	require.NoError(t, err)
	assert.Equal(t, "1741944601500", state.Laps[0].ID)
	assert.Nil(t, state.SessionStart)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestImportSession_RejectsInconsistentLaps(t *testing.T) {
	doc, err := ExportSession(sampleState(), sampleSettings(), exportedAt)
	require.NoError(t, err)
	doc.Laps[1].LapTime = 100
	doc.Laps[0].ID = ""
	doc.Settings.Theme = "neon"

	_, _, err = ImportSession(doc)
	require.ErrorIs(t, err, ErrInvalidDocument)
	assert.Contains(t, err.Error(), "laps[1].lapTime")
	assert.Contains(t, err.Error(), "laps[0].id is required")
	assert.Contains(t, err.Error(), "settings")
}

func TestValidateSessionDocument(t *testing.T) {
	assert.NotEmpty(t, ValidateSessionDocument(nil))

	doc := &SessionDocument{
		TotalTime: 1000,
		Settings:  domain.DefaultSettings(),
		Laps: []LapRecord{
			{ID: "a", Time: 800, LapTime: 800},
			{ID: "a", Time: 600, LapTime: -200},
			{ID: "b", Time: 1200, LapTime: 600},
		},
	}
	errs := ValidateSessionDocument(doc)
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	joined := strings.Join(msgs, "\n")
	assert.Contains(t, joined, "duplicate id")
	assert.Contains(t, joined, "before previous lap")
	assert.Contains(t, joined, "exceeds totalTime")
}

func TestExportSettings_RoundTrip(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			doc := ExportSettings(sampleSettings(), exportedAt)
			assert.Equal(t, SettingsSchemaVersion, doc.Version)

			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, doc, f))
			assert.Contains(t, buf.String(), "precision")
			assert.NotContains(t, buf.String(), "Settings", "settings fields must be flattened")

			decoded, err := DecodeSettings(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, SettingsSchemaVersion, decoded.Version)
			assert.True(t, exportedAt.Equal(decoded.ExportDate))

			settings, err := ImportSettings(decoded)
			require.NoError(t, err)
			assert.Equal(t, sampleSettings(), settings)
		})
	}
}

func TestImportSettings_Invalid(t *testing.T) {
	doc := ExportSettings(domain.DefaultSettings(), exportedAt)
	doc.Precision = "minutes"
	_, err := ImportSettings(doc)
	assert.ErrorIs(t, err, ErrInvalidDocument)
	assert.ErrorIs(t, err, domain.ErrInvalidPrecision)
}

func TestWriteFile_AndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	doc, err := ExportSession(sampleState(), sampleSettings(), exportedAt)
	require.NoError(t, err)

	path, err := WriteFile(dir, SessionFileName(exportedAt, FormatYAML), doc, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "stopwatch-session-2025-03-15.yaml", filepath.Base(path))

	_, err = os.Stat(path)
	require.NoError(t, err)

	loaded, err := LoadSessionFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), loaded.TotalTime)
	assert.Len(t, loaded.Laps, 2)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	assert.Equal(t, FormatYAML, FormatForPath("a/b.YAML"))
	assert.Equal(t, FormatJSON, FormatForPath("a/b.txt"))
	assert.Equal(t, "stopwatch-settings.json", SettingsFileName(FormatJSON))
}
