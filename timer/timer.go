// Package timer implements the two CHIP-8 countdown timers. Both decay
// at a fixed 60 Hz wall-clock rate, independent of instruction
// throughput: the owning run loop calls Update once per iteration and
// the timers decrement once per elapsed tick period, saturating at zero.
package timer

import "time"

// TickRate is the decay frequency of both timers in Hz.
const TickRate = 60

// Period is the wall-clock interval between timer decrements.
const Period = time.Second / TickRate

// Timers holds the delay and sound counters together with the wall
// clock driving their decay.
type Timers struct {
	Delay uint8
	Sound uint8

	now      func() time.Time
	lastTick time.Time
}

// New returns timers driven by the system clock.
func New() *Timers {
	return NewWithClock(time.Now)
}

// NewWithClock returns timers driven by the given clock, letting tests
// inject synthetic elapsed time.
func NewWithClock(now func() time.Time) *Timers {
	return &Timers{
		now:      now,
		lastTick: now(),
	}
}

// Update applies the wall-clock time elapsed since the last decrement:
// both counters decrease by one per tick period crossed. Time left over
// after the last full period is carried into the next call, so calling
// Update more often than the tick period loses no precision.
func (t *Timers) Update() {
	elapsed := t.now().Sub(t.lastTick)
	if elapsed < Period {
		return
	}

	ticks := elapsed / Period
	t.Delay = saturatingSub(t.Delay, ticks)
	t.Sound = saturatingSub(t.Sound, ticks)
	t.lastTick = t.lastTick.Add(ticks * Period)
}

func saturatingSub(counter uint8, ticks time.Duration) uint8 {
	if time.Duration(counter) <= ticks {
		return 0
	}
	return counter - uint8(ticks)
}
