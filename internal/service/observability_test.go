package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogUseCaseObserver_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(zerolog.New(&buf))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "reset",
		Duration: 3 * time.Millisecond,
		Success:  false,
		Err:      errors.New("boom"),
		Fields:   map[string]any{"laps_cleared": 2},
	})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "reset", line["use_case"])
	assert.Equal(t, "boom", line["error"])
	assert.Equal(t, false, line["success"])
	assert.EqualValues(t, 3, line["duration_ms"])
	assert.EqualValues(t, 2, line["laps_cleared"])
}

func TestLogUseCaseObserver_DisabledLoggerIsNoop(t *testing.T) {
	obs := NewLogUseCaseObserver(zerolog.Nop())
	assert.IsType(t, NoopUseCaseObserver{}, obs)
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	rec := &recordingObserver{}
	assert.Same(t, rec, useCaseObserverOrNoop([]UseCaseObserver{nil, rec}))
}
