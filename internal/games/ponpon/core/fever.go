package core

import "time"

// FeverConfig holds the fever gauge tuning.
type FeverConfig struct {
	Enabled   bool
	Threshold int
	PerTile   int
	Duration  time.Duration
}

// FeverState is the observable fever gauge.
type FeverState struct {
	Gauge     int
	Active    bool
	Remaining time.Duration
}

// FeverTracker fills a gauge from cleared tiles and runs a timed fever
// when it tops out. It only reports whether fever is active; the score
// multiplier is applied by the score rules.
type FeverTracker struct {
	cfg         FeverConfig
	state       FeverState
	activations int
}

// NewFeverTracker creates a tracker with an empty gauge.
func NewFeverTracker(cfg FeverConfig) *FeverTracker {
	if cfg.PerTile <= 0 {
		cfg.PerTile = 1
	}
	return &FeverTracker{cfg: cfg}
}

// AddGauge adds tiles×PerTile to the gauge. It returns true only on the
// call that fills the gauge and starts fever. While fever is active or
// the tracker is disabled the gauge does not move.
func (f *FeverTracker) AddGauge(tiles int) bool {
	if !f.cfg.Enabled || f.state.Active || tiles <= 0 {
		return false
	}
	f.state.Gauge += tiles * f.cfg.PerTile
	if f.state.Gauge < f.cfg.Threshold {
		return false
	}
	f.state.Gauge = f.cfg.Threshold
	f.Start()
	return true
}

// Start empties the gauge and arms the fever countdown.
func (f *FeverTracker) Start() {
	f.state = FeverState{
		Active:    true,
		Remaining: f.cfg.Duration,
	}
	f.activations++
}

// Tick drains the fever countdown. It returns true on the tick fever ends.
func (f *FeverTracker) Tick(dt time.Duration) bool {
	if !f.state.Active {
		return false
	}
	f.state.Remaining -= dt
	if f.state.Remaining > 0 {
		return false
	}
	f.state.Active = false
	f.state.Remaining = 0
	return true
}

// Reset empties the gauge, stops fever and clears the activation count.
func (f *FeverTracker) Reset() {
	f.state = FeverState{}
	f.activations = 0
}

// Active reports whether fever is running.
func (f *FeverTracker) Active() bool {
	return f.state.Active
}

// Enabled reports whether the gauge accepts tiles at all.
func (f *FeverTracker) Enabled() bool {
	return f.cfg.Enabled
}

// Gauge returns the current gauge value.
func (f *FeverTracker) Gauge() int {
	return f.state.Gauge
}

// Threshold returns the gauge value that starts fever.
func (f *FeverTracker) Threshold() int {
	return f.cfg.Threshold
}

// Remaining returns the fever time left.
func (f *FeverTracker) Remaining() time.Duration {
	return f.state.Remaining
}

// State returns a copy of the fever state.
func (f *FeverTracker) State() FeverState {
	return f.state
}

// Activations returns how many times fever started since Reset.
func (f *FeverTracker) Activations() int {
	return f.activations
}
