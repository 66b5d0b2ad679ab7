package internal

import (
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

// fakeTime is a manually advanced time source
type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time {
	return f.t
}

func (f *fakeTime) advance(d time.Duration) {
	f.t = f.t.Add(d)
}

func TestClockPeriod(t *testing.T) {
	tests := []struct {
		hz   uint16
		want time.Duration
	}{
		{60, time.Second / 60},
		{700, time.Second / 700},
		{1000, time.Millisecond},
		{0, time.Second},
	}

	for _, tt := range tests {
		clock := NewClock(tt.hz, nil)
		assert.Equal(t, tt.want, clock.Period())
	}
}

func TestClockTick(t *testing.T) {
	ft := &fakeTime{t: time.Unix(0, 0)}
	clock := NewClock(1000, ft.now)

	assert.False(t, clock.Tick())

	ft.advance(999 * time.Microsecond)
	assert.False(t, clock.Tick())

	ft.advance(time.Microsecond)
	assert.True(t, clock.Tick())
	assert.False(t, clock.Tick())
}

func TestClockCatchesUp(t *testing.T) {
	ft := &fakeTime{t: time.Unix(0, 0)}
	clock := NewClock(1000, ft.now)

	ft.advance(3500 * time.Microsecond)
	ticks := 0
	for clock.Tick() {
		ticks++
	}
	assert.Equal(t, 3, ticks)

	ft.advance(500 * time.Microsecond)
	assert.True(t, clock.Tick())
	assert.False(t, clock.Tick())
}

func TestClockRemaining(t *testing.T) {
	ft := &fakeTime{t: time.Unix(0, 0)}
	clock := NewClock(100, ft.now)
	assert.Equal(t, 10*time.Millisecond, clock.Remaining())

	ft.advance(4 * time.Millisecond)
	assert.Equal(t, 6*time.Millisecond, clock.Remaining())

	ft.advance(20 * time.Millisecond)
	assert.Equal(t, time.Duration(0), clock.Remaining())

	assert.True(t, clock.Tick())
	assert.Equal(t, time.Duration(0), clock.Remaining())
	assert.True(t, clock.Tick())
	assert.Equal(t, 6*time.Millisecond, clock.Remaining())
}
