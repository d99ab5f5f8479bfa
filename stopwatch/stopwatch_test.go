package stopwatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualClock is a deterministic Clock for tests; Advance moves time forward.
type manualClock struct {
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestNewStartsAtZero(t *testing.T) {
	t.Parallel()

	sw := New("")

	assert.GreaterOrEqual(t, sw.Elapsed(), 0.0)
	assert.Zero(t, sw.Split())
	assert.Zero(t, sw.Lap())
}

func TestElapsedIsPureRead(t *testing.T) {
	t.Parallel()

	clock := newManualClock()
	sw := NewWithClock("", clock)

	clock.Advance(250 * time.Millisecond)

	require.InDelta(t, 0.25, sw.Elapsed(), 1e-9)
	require.InDelta(t, 0.25, sw.Elapsed(), 1e-9)
	assert.Zero(t, sw.Split(), "Elapsed must not record a split")
}

func TestClickRecordsSplits(t *testing.T) {
	t.Parallel()

	clock := newManualClock()
	sw := NewWithClock("", clock)

	clock.Advance(100 * time.Millisecond)
	first := sw.Click()
	require.InDelta(t, 0.1, first, 1e-9)
	assert.Equal(t, first, sw.Split())
	assert.Equal(t, first, sw.Lap(), "after one click, lap equals split")

	clock.Advance(300 * time.Millisecond)
	second := sw.Click()
	require.InDelta(t, 0.4, second, 1e-9)
	assert.Equal(t, second, sw.Split())
	assert.InDelta(t, 0.3, sw.Lap(), 1e-9, "lap is the time between the two clicks")
	assert.GreaterOrEqual(t, sw.Split(), first)
}

func TestResetClearsSplits(t *testing.T) {
	t.Parallel()

	clock := newManualClock()
	sw := NewWithClock("", clock)

	clock.Advance(time.Second)
	sw.Click()
	require.NotZero(t, sw.Split())

	sw.Reset()

	assert.Zero(t, sw.Split())
	assert.Zero(t, sw.Lap())
	assert.Zero(t, sw.Elapsed(), "zero point is re-anchored at now")
}

func TestClickAgainstWallClock(t *testing.T) {
	t.Parallel()

	sw := New("")

	const sleep = 200 * time.Millisecond

	time.Sleep(sleep)
	first := sw.Click()

	time.Sleep(sleep)
	second := sw.Click()

	// Generous bounds: scheduling can stretch a sleep but never shrink it.
	assert.GreaterOrEqual(t, first, sleep.Seconds())
	assert.GreaterOrEqual(t, second, first)
	assert.GreaterOrEqual(t, sw.Lap(), sleep.Seconds())
	assert.InDelta(t, sleep.Seconds(), sw.Lap(), sleep.Seconds())
}

func TestFormatSeconds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		seconds  float64
		expected string
	}{
		{name: "sub-millisecond", seconds: 0.0001, expected: "0.10ms"},
		{name: "just under a second uses ms", seconds: 0.0009, expected: "0.90ms"},
		{name: "milliseconds", seconds: 0.011, expected: "11.00ms"},
		{name: "exactly one second", seconds: 1.0, expected: "1.00s"},
		{name: "one and a half seconds", seconds: 1.5, expected: "1.50s"},
		{name: "long duration truncated to 2 places", seconds: 25.23456789, expected: "25.23s"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, FormatSeconds(tc.seconds))
		})
	}
}

func TestStringIncludesNameWhenPresent(t *testing.T) {
	t.Parallel()

	clock := newManualClock()

	anonymous := NewWithClock("", clock)
	named := NewWithClock("parse", clock)

	clock.Advance(1500 * time.Millisecond)

	assert.Equal(t, "1.50s", anonymous.String())
	assert.Equal(t, "parse: 1.50s", named.String())
	assert.Equal(t, "parse", named.Name())
}

func TestStringUsesMillisecondsUnderOneSecond(t *testing.T) {
	t.Parallel()

	clock := newManualClock()
	sw := NewWithClock("", clock)

	clock.Advance(900 * time.Microsecond)

	assert.Equal(t, "0.90ms", sw.String())
}

func TestNewWithClockNilFallsBackToSteady(t *testing.T) {
	t.Parallel()

	sw := NewWithClock("", nil)

	assert.GreaterOrEqual(t, sw.Elapsed(), 0.0)
}

func TestSystemClockStripsMonotonicReading(t *testing.T) {
	t.Parallel()

	now := System.Now()

	// A time stripped of its monotonic reading round-trips through Round(0)
	// unchanged; one carrying it does not compare equal with ==.
	assert.Equal(t, now, now.Round(0))
}

func TestToSeconds(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.5, ToSeconds(1500*time.Millisecond), 1e-12)
	assert.InDelta(t, 0.000001, ToSeconds(time.Microsecond), 1e-15)
}
