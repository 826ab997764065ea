package exporter

import (
	"testing"

	"github.com/alexanderramin/lapwatch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareText(t *testing.T) {
	text, err := ShareText(sampleState())
	require.NoError(t, err)
	assert.Equal(t, "Total Time: 0:05.00, Laps: 2, Best Lap: 0:01.50", text)
}

func TestShareText_NoLapsOmitsBestLap(t *testing.T) {
	text, err := ShareText(domain.SessionState{ElapsedMs: 61_230})
	require.NoError(t, err)
	assert.Equal(t, "Total Time: 1:01.23, Laps: 0", text)
}

func TestShareText_Empty(t *testing.T) {
	_, err := ShareText(domain.SessionState{})
	assert.ErrorIs(t, err, ErrNothingToExport)
}
