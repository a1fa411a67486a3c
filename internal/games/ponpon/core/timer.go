package core

import "time"

// RoundTimer counts the round down from a fixed duration.
type RoundTimer struct {
	duration  time.Duration
	remaining time.Duration
}

// NewRoundTimer creates a full timer.
func NewRoundTimer(d time.Duration) *RoundTimer {
	return &RoundTimer{duration: d, remaining: d}
}

// Tick drains the timer. It returns true on the tick it reaches zero.
func (t *RoundTimer) Tick(dt time.Duration) bool {
	if t.remaining <= 0 {
		return false
	}
	t.remaining -= dt
	if t.remaining > 0 {
		return false
	}
	t.remaining = 0
	return true
}

// AddTime extends the round, never past its full duration.
func (t *RoundTimer) AddTime(d time.Duration) {
	if t.remaining <= 0 || d <= 0 {
		return
	}
	t.remaining = min(t.remaining+d, t.duration)
}

// Remaining returns the time left.
func (t *RoundTimer) Remaining() time.Duration {
	return t.remaining
}

// Duration returns the full round length.
func (t *RoundTimer) Duration() time.Duration {
	return t.duration
}

// Elapsed returns how much of the round has been played.
func (t *RoundTimer) Elapsed() time.Duration {
	return t.duration - t.remaining
}

// Fraction returns the remaining share of the round in [0, 1].
func (t *RoundTimer) Fraction() float64 {
	if t.duration <= 0 {
		return 0
	}
	return float64(t.remaining) / float64(t.duration)
}

// Expired reports whether the timer has run out.
func (t *RoundTimer) Expired() bool {
	return t.remaining <= 0
}
