package clock

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)

func newTestClock() *Clock {
	return New(WithNow(func() time.Time { return fixedNow }))
}

func tickN(c *Clock, h Handle, n int) {
	for i := 0; i < n; i++ {
		c.Tick(h)
	}
}

func TestStart_RecordsSessionStartOnce(t *testing.T) {
	c := newTestClock()
	require.Nil(t, c.SessionStart())

	h, started := c.Start()
	require.True(t, started)
	require.NotZero(t, h)
	require.NotNil(t, c.SessionStart())
	assert.Equal(t, fixedNow, *c.SessionStart())

	c.Stop()
	c.now = func() time.Time { return fixedNow.Add(time.Hour) }
	c.Start()
	assert.Equal(t, fixedNow, *c.SessionStart(), "resume must not move the session start")
}

func TestStart_WhileRunningIsNoop(t *testing.T) {
	c := newTestClock()
	h1, _ := c.Start()
	h2, started := c.Start()
	assert.False(t, started)
	assert.Equal(t, h1, h2)
}

func TestTick_AdvancesTenMillisecondsAndNotifies(t *testing.T) {
	c := newTestClock()
	var seen []int64
	c.Subscribe(ObserverFunc(func(ms int64) { seen = append(seen, ms) }))

	h, _ := c.Start()
	tickN(c, h, 3)

	assert.Equal(t, int64(30), c.ElapsedMs())
	assert.Equal(t, []int64{10, 20, 30}, seen)
}

func TestStop_FreezesElapsedAndRevokesHandle(t *testing.T) {
	c := newTestClock()
	h, _ := c.Start()
	tickN(c, h, 150)
	require.True(t, c.Stop())
	assert.False(t, c.Stop(), "second stop is a no-op")

	assert.False(t, c.Tick(h), "in-flight tick after stop must be discarded")
	assert.Equal(t, int64(1500), c.ElapsedMs())
	assert.Zero(t, c.Handle())
}

func TestStart_IssuesFreshHandleOnResume(t *testing.T) {
	c := newTestClock()
	h1, _ := c.Start()
	c.Stop()
	h2, _ := c.Start()
	require.NotEqual(t, h1, h2)

	assert.False(t, c.Tick(h1), "handle from an earlier run must stay revoked")
	assert.True(t, c.Tick(h2))
	assert.Equal(t, int64(10), c.ElapsedMs())
}

func TestReset_RejectedWhileRunning(t *testing.T) {
	c := newTestClock()
	h, _ := c.Start()
	tickN(c, h, 42)

	assert.ErrorIs(t, c.Reset(), ErrClockRunning)
	assert.Equal(t, int64(420), c.ElapsedMs())
	assert.True(t, c.Running())
}

func TestReset_ClearsStoppedClock(t *testing.T) {
	c := newTestClock()
	h, _ := c.Start()
	tickN(c, h, 420)
	c.Stop()

	require.NoError(t, c.Reset())
	assert.Equal(t, int64(0), c.ElapsedMs())
	assert.False(t, c.Running())
	assert.Nil(t, c.SessionStart())
}

func TestTeardown_NoTickAfterwards(t *testing.T) {
	c := newTestClock()
	calls := 0
	c.Subscribe(ObserverFunc(func(int64) { calls++ }))
	h, _ := c.Start()
	c.Tick(h)

	c.Teardown()
	assert.False(t, c.Tick(h))
	assert.Equal(t, 1, calls)
	assert.False(t, c.Running())
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	c := newTestClock()
	var a, b int
	unsubA := c.Subscribe(ObserverFunc(func(int64) { a++ }))
	c.Subscribe(ObserverFunc(func(int64) { b++ }))

	h, _ := c.Start()
	c.Tick(h)
	unsubA()
	unsubA()
	c.Tick(h)

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestSessionStart_ReturnsCopy(t *testing.T) {
	c := newTestClock()
	c.Start()
	got := c.SessionStart()
	*got = got.Add(time.Hour)
	assert.Equal(t, fixedNow, *c.SessionStart())
}

// TestClock_Invariants_RandomOperations drives random start/stop/reset/tick
// sequences and checks that elapsed time only grows while running, is frozen
// while stopped and is zero straight after a reset.
func TestClock_Invariants_RandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 100; trial++ {
		c := newTestClock()
		var h Handle
		for step := 0; step < 200; step++ {
			before := c.ElapsedMs()
			wasRunning := c.Running()

			switch rng.Intn(5) {
			case 0:
				h, _ = c.Start()
			case 1:
				c.Stop()
			case 2:
				err := c.Reset()
				if wasRunning {
					assert.ErrorIs(t, err, ErrClockRunning)
				} else {
					require.NoError(t, err)
					assert.Equal(t, int64(0), c.ElapsedMs(), "trial %d step %d: reset must zero", trial, step)
					continue
				}
			default:
				c.Tick(h)
			}

			after := c.ElapsedMs()
			assert.GreaterOrEqual(t, after, before, "trial %d step %d: elapsed decreased", trial, step)
			if !wasRunning {
				assert.Equal(t, before, after, "trial %d step %d: stopped clock moved", trial, step)
			}
		}
	}
}
