package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutoLap_FiresEveryInterval(t *testing.T) {
	a := NewAutoLap(AutoLapIntervalMs)

	var fired []int64
	for ms := TickMs; ms <= 185_000; ms += TickMs {
		if a.Due(ms) {
			fired = append(fired, ms)
		}
	}
	assert.Equal(t, []int64{60_000, 120_000, 180_000}, fired)
}

func TestAutoLap_ArmMidSession(t *testing.T) {
	a := NewAutoLap(AutoLapIntervalMs)
	a.Arm(90_000)
	assert.Equal(t, int64(120_000), a.NextMs())
	assert.False(t, a.Due(119_990))
	assert.True(t, a.Due(120_000))
	assert.Equal(t, int64(180_000), a.NextMs())
}

func TestAutoLap_ResetDisarms(t *testing.T) {
	a := NewAutoLap(1000)
	a.Arm(5000)
	a.Reset()
	assert.Zero(t, a.NextMs())
	assert.False(t, a.Due(10))
	assert.Equal(t, int64(1000), a.NextMs())
}

func TestNewAutoLap_DefaultsNonPositiveInterval(t *testing.T) {
	a := NewAutoLap(0)
	a.Arm(0)
	assert.Equal(t, AutoLapIntervalMs, a.NextMs())
}
