// Package stopwatch measures elapsed wall time from an explicit reference
// point and records split/lap readings.
//
// A Stopwatch remembers its zero point plus the two most recent Click
// readings, which is enough to report the current split and the lap time
// between the last two clicks without the caller tracking timestamps itself.
//
// A Stopwatch has no thread-safety contract: sharing one across goroutines
// without external synchronization is unsupported.
package stopwatch

import (
	"fmt"
	"time"
)

// Clock supplies the current time. It lets callers pick the timing guarantees
// they need: monotonic behaviour for interval measurement, or calendar time
// that follows system clock adjustments.
type Clock interface {
	Now() time.Time
}

// steadyClock reads time.Now with its monotonic component intact, so
// intervals are unaffected by system clock adjustments.
type steadyClock struct{}

func (steadyClock) Now() time.Time { return time.Now() }

// systemClock strips the monotonic reading, so elapsed time tracks the wall
// clock even across adjustments.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().Round(0) }

// The available clock sources.
//
// On Go the highest-resolution source and the guaranteed-monotonic source are
// the same runtime clock, so Precise and Steady are aliases; both exist so
// call sites can state the guarantee they rely on.
var (
	Precise Clock = steadyClock{}
	Steady  Clock = steadyClock{}
	System  Clock = systemClock{}
)

// Stopwatch measures time in seconds from a zero point.
type Stopwatch struct {
	name  string
	clock Clock
	zero  time.Time
	split float64 // elapsed seconds at the most recent Click
	prior float64 // elapsed seconds at the Click before that
}

// New creates a named stopwatch on the Steady clock, anchored at now.
// The name may be empty.
func New(name string) *Stopwatch {
	return NewWithClock(name, Steady)
}

// NewWithClock creates a named stopwatch on an explicit clock source,
// anchored at now. A nil clock falls back to Steady.
func NewWithClock(name string, clock Clock) *Stopwatch {
	if clock == nil {
		clock = Steady
	}

	sw := &Stopwatch{name: name, clock: clock}
	sw.Reset()

	return sw
}

// Name returns the stopwatch's name, which may be empty.
func (sw *Stopwatch) Name() string { return sw.name }

// Reset re-anchors the zero point at now and clears both recorded splits.
func (sw *Stopwatch) Reset() {
	sw.zero = sw.clock.Now()
	sw.split = 0
	sw.prior = 0
}

// Elapsed returns the seconds that have passed from the zero point to now.
// It is a pure read and never mutates the stopwatch.
func (sw *Stopwatch) Elapsed() float64 {
	return sw.clock.Now().Sub(sw.zero).Seconds()
}

// Click records a new split and returns the elapsed seconds at this click.
// The previous split is retained so Lap can report the interval between the
// two most recent clicks. This is the only mutating read.
func (sw *Stopwatch) Click() float64 {
	tau := sw.Elapsed()
	sw.prior = sw.split
	sw.split = tau

	return sw.split
}

// Split returns the elapsed seconds recorded at the most recent Click,
// without reading the clock again. Zero if Click has never been called since
// creation or the last Reset.
func (sw *Stopwatch) Split() float64 { return sw.split }

// Lap returns the seconds between the two most recent clicks. After a single
// Click it equals Split.
func (sw *Stopwatch) Lap() float64 { return sw.split - sw.prior }

// FormatSeconds renders a time in seconds as a short human-friendly string.
// Times under one second are shown in milliseconds, otherwise in seconds,
// both to two decimal places with a unit suffix:
//
//	FormatSeconds(0.0001)      == "0.10ms"
//	FormatSeconds(0.011)       == "11.00ms"
//	FormatSeconds(1.0)         == "1.00s"
//	FormatSeconds(25.23456789) == "25.23s"
func FormatSeconds(seconds float64) string {
	if seconds < 1.0 {
		return fmt.Sprintf("%.2fms", seconds*1000.0)
	}

	return fmt.Sprintf("%.2fs", seconds)
}

// String renders the current elapsed time, prefixed by the stopwatch's name
// when it has one.
func (sw *Stopwatch) String() string {
	tau := FormatSeconds(sw.Elapsed())
	if sw.name == "" {
		return tau
	}

	return sw.name + ": " + tau
}

// ToSeconds converts a time.Duration to a floating-point number of seconds.
func ToSeconds(d time.Duration) float64 {
	return d.Seconds()
}
