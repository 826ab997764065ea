package stats

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/lapwatch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lapsFromDurations builds a well-formed ledger from lap durations.
func lapsFromDurations(durations ...int64) []domain.Lap {
	laps := make([]domain.Lap, 0, len(durations))
	var cumulative int64
	for i, d := range durations {
		cumulative += d
		laps = append(laps, domain.Lap{
			ID:           string(rune('a' + i)),
			Number:       i + 1,
			CumulativeMs: cumulative,
			DurationMs:   d,
		})
	}
	return laps
}

func TestScenario_TwoLaps(t *testing.T) {
	laps := lapsFromDurations(1500, 2700)

	best, ok := BestLap(laps)
	require.True(t, ok)
	assert.Equal(t, 1, best.Number)

	worst, ok := WorstLap(laps)
	require.True(t, ok)
	assert.Equal(t, 2, worst.Number)

	avg, ok := AverageLapDuration(laps)
	require.True(t, ok)
	assert.Equal(t, 2100.0, avg)
}

func TestEmptyLedger_NotApplicable(t *testing.T) {
	_, ok := BestLap(nil)
	assert.False(t, ok)
	_, ok = WorstLap(nil)
	assert.False(t, ok)
	_, ok = AverageLapDuration(nil)
	assert.False(t, ok)
	_, ok = Consistency(nil)
	assert.False(t, ok)
	_, ok = Pace(nil)
	assert.False(t, ok)
}

func TestBestWorst_TiesPickEarliest(t *testing.T) {
	laps := lapsFromDurations(2000, 1000, 3000, 1000, 3000)

	best, _ := BestLap(laps)
	assert.Equal(t, 2, best.Number)
	worst, _ := WorstLap(laps)
	assert.Equal(t, 3, worst.Number)
}

func TestConsistency(t *testing.T) {
	c, ok := Consistency(lapsFromDurations(1000, 1000, 1000))
	require.True(t, ok)
	assert.Equal(t, 100.0, c)

	// mean 2000, population std dev 1000 -> 50%
	c, ok = Consistency(lapsFromDurations(1000, 3000))
	require.True(t, ok)
	assert.InDelta(t, 50.0, c, 1e-9)

	// std dev larger than the mean clamps to zero
	c, ok = Consistency(lapsFromDurations(10, 10, 10, 10, 10_000))
	require.True(t, ok)
	assert.Equal(t, 0.0, c)
}

func TestConsistency_ZeroAverageGuarded(t *testing.T) {
	laps := []domain.Lap{{CumulativeMs: 0, DurationMs: 0}}
	c, ok := Consistency(laps)
	assert.False(t, ok)
	assert.False(t, math.IsNaN(c))

	p, ok := Pace(laps)
	assert.False(t, ok)
	assert.False(t, math.IsNaN(p))
}

func TestConsistency_SingleLap(t *testing.T) {
	c, ok := Consistency(lapsFromDurations(1234))
	require.True(t, ok)
	assert.Equal(t, 100.0, c)
}

func TestPace_ShortSessionIsZero(t *testing.T) {
	for n := 1; n <= RecentWindow; n++ {
		durations := make([]int64, n)
		for i := range durations {
			durations[i] = int64(1000 * (i + 1))
		}
		p, ok := Pace(lapsFromDurations(durations...))
		require.True(t, ok)
		assert.Equal(t, 0.0, p, "%d laps", n)
	}
}

func TestPace_RecentFasterIsPositive(t *testing.T) {
	// all-time avg = (4000*3 + 1000*3)/6 = 2500, recent avg = 1000 -> +60%
	p, ok := Pace(lapsFromDurations(4000, 4000, 4000, 1000, 1000, 1000))
	require.True(t, ok)
	assert.InDelta(t, 60.0, p, 1e-9)

	p, ok = Pace(lapsFromDurations(1000, 1000, 1000, 4000, 4000, 4000))
	require.True(t, ok)
	assert.InDelta(t, -60.0, p, 1e-9)
}

func TestCurrentLapMs(t *testing.T) {
	assert.Equal(t, int64(900), CurrentLapMs(900, nil))
	assert.Equal(t, int64(300), CurrentLapMs(4500, lapsFromDurations(1500, 2700)))
}

func TestProgressToMinute(t *testing.T) {
	assert.Equal(t, 0.0, ProgressToMinute(0))
	assert.Equal(t, 50.0, ProgressToMinute(30_000))
	assert.Equal(t, 25.0, ProgressToMinute(75_000))
}

func TestSummarize(t *testing.T) {
	start := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	state := domain.SessionState{
		ElapsedMs:    5000,
		Running:      true,
		Laps:         lapsFromDurations(1500, 2700),
		SessionStart: &start,
	}

	s := Summarize(state, start.Add(10*time.Second))
	assert.Equal(t, int64(5000), s.TotalMs)
	assert.Equal(t, 2, s.TotalLaps)
	assert.Equal(t, int64(800), s.CurrentLapMs)
	assert.Equal(t, TrendFaster, s.CurrentLapTrend)
	require.NotNil(t, s.BestLap)
	assert.Equal(t, int64(1500), s.BestLap.DurationMs)
	require.NotNil(t, s.WorstLap)
	assert.Equal(t, int64(2700), s.WorstLap.DurationMs)
	require.NotNil(t, s.AverageMs)
	assert.Equal(t, 2100.0, *s.AverageMs)
	require.NotNil(t, s.Consistency)
	assert.Equal(t, 71.0, *s.Consistency) // 100 - 600/2100*100 = 71.43
	require.NotNil(t, s.Pace)
	assert.Equal(t, 0.0, *s.Pace)
	assert.Equal(t, 10*time.Second, s.SessionDuration)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(domain.SessionState{}, time.Now())
	assert.Nil(t, s.BestLap)
	assert.Nil(t, s.WorstLap)
	assert.Nil(t, s.AverageMs)
	assert.Nil(t, s.Consistency)
	assert.Nil(t, s.Pace)
	assert.Zero(t, s.SessionDuration)
	assert.Equal(t, TrendUnknown, s.CurrentLapTrend)
}

// TestStats_Invariants_BestWorstBracketEveryLap checks on random ledgers that
// best <= every lap <= worst, the average lies between them, consistency
// stays within [0, 100] and nothing is NaN.
func TestStats_Invariants_BestWorstBracketEveryLap(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 300; trial++ {
		n := rng.Intn(20) + 1
		durations := make([]int64, n)
		for i := range durations {
			durations[i] = int64(rng.Intn(10_000)) * 10
		}
		laps := lapsFromDurations(durations...)

		best, ok := BestLap(laps)
		require.True(t, ok)
		worst, ok := WorstLap(laps)
		require.True(t, ok)
		for _, l := range laps {
			assert.LessOrEqual(t, best.DurationMs, l.DurationMs, "trial %d", trial)
			assert.LessOrEqual(t, l.DurationMs, worst.DurationMs, "trial %d", trial)
		}

		avg, _ := AverageLapDuration(laps)
		assert.GreaterOrEqual(t, avg, float64(best.DurationMs), "trial %d", trial)
		assert.LessOrEqual(t, avg, float64(worst.DurationMs), "trial %d", trial)

		if c, ok := Consistency(laps); ok {
			assert.False(t, math.IsNaN(c))
			assert.GreaterOrEqual(t, c, 0.0)
			assert.LessOrEqual(t, c, 100.0+1e-9)
		}
		if p, ok := Pace(laps); ok {
			assert.False(t, math.IsNaN(p))
		}
	}
}
