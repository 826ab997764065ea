package cli

import (
	"testing"

	"github.com/alexanderramin/lapwatch/internal/domain"
	"github.com/alexanderramin/lapwatch/internal/exporter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrecisionValue(t *testing.T) {
	var v precisionValue
	require.NoError(t, v.Set("milliseconds"))
	assert.Equal(t, domain.PrecisionMilliseconds, v.value)
	assert.Equal(t, "milliseconds", v.String())
	assert.Equal(t, "precision", v.Type())

	err := v.Set("minutes")
	assert.ErrorIs(t, err, domain.ErrInvalidPrecision)
	assert.Equal(t, domain.PrecisionMilliseconds, v.value, "failed Set keeps the old value")
}

func TestThemeValue(t *testing.T) {
	var v themeValue
	require.NoError(t, v.Set("light"))
	assert.Equal(t, domain.ThemeLight, v.value)
	assert.ErrorIs(t, v.Set("sepia"), domain.ErrInvalidTheme)
}

func TestFormatValue(t *testing.T) {
	var v formatValue
	require.NoError(t, v.Set("yml"))
	assert.Equal(t, exporter.FormatYAML, v.value)
	assert.ErrorIs(t, v.Set("xml"), exporter.ErrUnsupportedFormat)
}
