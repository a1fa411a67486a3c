package core

import "time"

// ComboStep maps a minimum combo count to a score multiplier.
type ComboStep struct {
	MinCount   int
	Multiplier float64
}

// DefaultComboTable is the stock multiplier ladder.
var DefaultComboTable = []ComboStep{
	{MinCount: 0, Multiplier: 1.0},
	{MinCount: 5, Multiplier: 1.5},
	{MinCount: 10, Multiplier: 2.0},
	{MinCount: 20, Multiplier: 3.0},
}

// ComboState is the observable combo counter.
// Remaining is positive exactly when Count is.
type ComboState struct {
	Count     int
	Remaining time.Duration
}

// ComboTracker counts chains cleared within a rolling time window.
type ComboTracker struct {
	window time.Duration
	table  []ComboStep
	state  ComboState
	max    int
}

// NewComboTracker creates a tracker. The table must be sorted by MinCount.
func NewComboTracker(window time.Duration, table []ComboStep) *ComboTracker {
	return &ComboTracker{window: window, table: table}
}

// Increment records a cleared chain and restarts the window.
func (c *ComboTracker) Increment() {
	c.state.Count++
	c.state.Remaining = c.window
	if c.state.Count > c.max {
		c.max = c.state.Count
	}
}

// Tick drains the window. It returns true when the combo breaks on this
// tick.
func (c *ComboTracker) Tick(dt time.Duration) bool {
	if c.state.Count == 0 {
		return false
	}
	c.state.Remaining -= dt
	if c.state.Remaining > 0 {
		return false
	}
	c.state = ComboState{}
	return true
}

// Reset clears the counter and the round maximum.
func (c *ComboTracker) Reset() {
	c.state = ComboState{}
	c.max = 0
}

// Count returns the current combo count.
func (c *ComboTracker) Count() int {
	return c.state.Count
}

// Remaining returns the time left in the current window.
func (c *ComboTracker) Remaining() time.Duration {
	return c.state.Remaining
}

// State returns a copy of the combo state.
func (c *ComboTracker) State() ComboState {
	return c.state
}

// Max returns the highest count reached since the last Reset.
func (c *ComboTracker) Max() int {
	return c.max
}

// Multiplier returns the tracker's multiplier for count.
func (c *ComboTracker) Multiplier(count int) float64 {
	return ComboMultiplier(c.table, count)
}

// ComboMultiplier looks count up in a step table. Negative counts and
// empty tables give 1.0; counts past the last step use the last step.
func ComboMultiplier(table []ComboStep, count int) float64 {
	if count < 0 || len(table) == 0 {
		return 1.0
	}
	mult := 1.0
	for _, step := range table {
		if count < step.MinCount {
			break
		}
		mult = step.Multiplier
	}
	return mult
}
