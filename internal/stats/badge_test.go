package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	// avg = 2000
	laps := lapsFromDurations(1000, 1800, 2200, 3000)

	assert.Equal(t, BadgeBest, Classify(laps[0], laps))
	assert.Equal(t, BadgeFaster, Classify(laps[1], laps))
	assert.Equal(t, BadgeSlower, Classify(laps[2], laps))
	assert.Equal(t, BadgeWorst, Classify(laps[3], laps))
}

func TestClassify_NeedsTwoLaps(t *testing.T) {
	laps := lapsFromDurations(1000)
	assert.Equal(t, BadgeNone, Classify(laps[0], laps))
}

func TestClassify_AllEqualIsBest(t *testing.T) {
	laps := lapsFromDurations(1000, 1000)
	assert.Equal(t, BadgeBest, Classify(laps[1], laps))
}

func TestCurrentLapTrend(t *testing.T) {
	laps := lapsFromDurations(1000, 3000) // avg 2000, last cumulative 4000
	assert.Equal(t, TrendFaster, CurrentLapTrend(5000, laps))
	assert.Equal(t, TrendSlower, CurrentLapTrend(6500, laps))
	assert.Equal(t, TrendUnknown, CurrentLapTrend(6500, laps[:1]))
}
