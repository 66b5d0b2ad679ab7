package internal

import "time"

// Clock fires once per period of a fixed frequency
type Clock struct {
	period time.Duration
	offset time.Time
	now    func() time.Time
}

// NewClock creates a clock ticking hz times per second. A nil now uses time.Now.
func NewClock(hz uint16, now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	if hz == 0 {
		hz = 1
	}
	return &Clock{
		period: time.Second / time.Duration(hz),
		offset: now(),
		now:    now,
	}
}

// Period returns the time between two ticks
func (c *Clock) Period() time.Duration {
	return c.period
}

// Tick reports whether a period has elapsed since the last tick. The reference
// point moves by exactly one period so late ticks are caught up, not dropped.
func (c *Clock) Tick() bool {
	if c.now().Sub(c.offset) < c.period {
		return false
	}
	c.offset = c.offset.Add(c.period)
	return true
}

// Remaining returns the time until the next tick, zero when it is due
func (c *Clock) Remaining() time.Duration {
	d := c.period - c.now().Sub(c.offset)
	if d < 0 {
		return 0
	}
	return d
}
