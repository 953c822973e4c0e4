package snake

import "time"

// DefaultTickInterval is the time between moves at the start of a session.
const DefaultTickInterval = 300 * time.Millisecond

// DefaultDecayFactor shortens the tick interval each time an apple is eaten.
const DefaultDecayFactor = 0.95

// MoveTimer is a repeating countdown with a mutable period.
// Time past the deadline carries into the next period.
type MoveTimer struct {
	duration time.Duration
	elapsed  time.Duration
}

// NewMoveTimer creates a timer with the given period.
func NewMoveTimer(d time.Duration) MoveTimer {
	return MoveTimer{duration: d}
}

// Tick advances the timer by delta and reports whether the period expired.
// A delta spanning several periods still reports a single expiry; the
// remainder is kept.
func (t *MoveTimer) Tick(delta time.Duration) bool {
	if t.duration <= 0 {
		return false
	}
	t.elapsed += delta
	if t.elapsed < t.duration {
		return false
	}
	t.elapsed %= t.duration
	return true
}

// Duration returns the current period.
func (t *MoveTimer) Duration() time.Duration {
	return t.duration
}

// Elapsed returns the time accumulated toward the next expiry.
func (t *MoveTimer) Elapsed() time.Duration {
	return t.elapsed
}

// SetDuration changes the period. Accumulated time is kept; call Reset to
// start a fresh period.
func (t *MoveTimer) SetDuration(d time.Duration) {
	t.duration = d
}

// Scale multiplies the period by factor, never going below floor (0 = no floor).
// A floor above the current period is capped at it, so scaling never slows
// the timer down. Returns the new period.
func (t *MoveTimer) Scale(factor float64, floor time.Duration) time.Duration {
	d := time.Duration(float64(t.duration) * factor)
	floor = min(floor, t.duration)
	if floor > 0 && d < floor {
		d = floor
	}
	if d <= 0 {
		d = time.Nanosecond
	}
	t.duration = d
	return d
}

// Reset clears accumulated time.
func (t *MoveTimer) Reset() {
	t.elapsed = 0
}
