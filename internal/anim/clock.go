package anim

import "time"

// maxCatchUp bounds the ticks one Advance may return, so a stalled frame
// (window drag, breakpoint) does not fast-forward the robot.
const maxCatchUp = 10

// Clock converts wall-clock frame times into a whole number of fixed ticks.
type Clock struct {
	interval time.Duration
	acc      time.Duration
}

// NewClock returns a clock firing every interval. Non-positive intervals
// fall back to the default tick.
func NewClock(interval time.Duration) *Clock {
	if interval <= 0 {
		interval = DefaultSettings().Tick
	}
	return &Clock{interval: interval}
}

// Advance adds elapsed time and returns how many ticks are now due.
func (c *Clock) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		c.acc += elapsed
	}
	n := int(c.acc / c.interval)
	c.acc -= time.Duration(n) * c.interval
	if n > maxCatchUp {
		n = maxCatchUp
		c.acc = 0
	}
	return n
}

// Interval returns the tick period.
func (c *Clock) Interval() time.Duration { return c.interval }
