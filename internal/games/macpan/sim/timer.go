// Package sim is the MacPan simulation core: the tile grid, entity movement
// with rollback, enemy wandering, projectile impacts and the event bus that
// reports gameplay events to the game-state layer. It knows nothing about
// terminals, input devices or frame pacing; the platform drives it one Step
// per tick and reads Snapshots to draw.
package sim

import "time"

// Clock returns the current wall-clock time.
type Clock func() time.Time

// Timer is a rate limiter producing a cycling frame index, used to pick
// animation frames independently of the tick rate.
type Timer struct {
	period time.Duration
	limit  int
	clock  Clock
	last   time.Time
	frame  int
}

// NewTimer creates a timer that advances stepsPerSecond times per second
// and wraps after limit frames. A nil clock means time.Now.
func NewTimer(stepsPerSecond float64, limit int, clock Clock) *Timer {
	if clock == nil {
		clock = time.Now
	}
	if limit < 1 {
		limit = 1
	}
	period := time.Second
	if stepsPerSecond > 0 {
		period = time.Duration(float64(time.Second) / stepsPerSecond)
	}
	t := &Timer{
		period: period,
		limit:  limit,
		clock:  clock,
	}
	t.Start()
	return t
}

// Start resets the frame index and the reference time.
func (t *Timer) Start() {
	t.last = t.clock()
	t.frame = 0
}

// Hit advances the frame index by one if at least one period elapsed since
// the last advance, and returns the current frame.
func (t *Timer) Hit() int {
	now := t.clock()
	if now.Sub(t.last) >= t.period {
		t.last = now
		t.frame++
		if t.frame == t.limit {
			t.frame = 0
		}
	}
	return t.frame
}

// Frame returns the current frame index without advancing it.
func (t *Timer) Frame() int {
	return t.frame
}
