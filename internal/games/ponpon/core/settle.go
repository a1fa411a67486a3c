package core

import "time"

// SettlePhase is the step a settle sequence is waiting in.
type SettlePhase int

const (
	SettleIdle SettlePhase = iota
	SettlePop              // cleared tiles popping, gravity pending
	SettleDrop             // tiles falling, refill pending
	SettleFill             // new tiles landing, input still locked
)

// String returns the phase name.
func (p SettlePhase) String() string {
	switch p {
	case SettlePop:
		return "pop"
	case SettleDrop:
		return "drop"
	case SettleFill:
		return "fill"
	default:
		return "idle"
	}
}

// SettleTimings are the waits after each settle step.
type SettleTimings struct {
	Pop  time.Duration
	Drop time.Duration
	Fill time.Duration
}

// DefaultSettleTimings returns the stock settle pacing.
func DefaultSettleTimings() SettleTimings {
	return SettleTimings{
		Pop:  300 * time.Millisecond,
		Drop: 200 * time.Millisecond,
		Fill: 300 * time.Millisecond,
	}
}

// SettleStep is one grid mutation performed by the settle sequence.
type SettleStep struct {
	Phase   SettlePhase // phase entered by this step
	Moves   []Move
	Spawned []*Tile
}

// Settler runs gravity and refill after a clear as timed steps.
// The grid is always mutated in the order compact, then refill.
type Settler struct {
	grid    *Grid
	timings SettleTimings
	phase   SettlePhase
	wait    time.Duration
}

// NewSettler creates an idle settler for grid.
func NewSettler(grid *Grid, timings SettleTimings) *Settler {
	return &Settler{grid: grid, timings: timings}
}

// Start begins a settle sequence. Tiles must already be removed.
func (s *Settler) Start() {
	s.phase = SettlePop
	s.wait = s.timings.Pop
}

// Active reports whether a sequence is in progress.
func (s *Settler) Active() bool {
	return s.phase != SettleIdle
}

// Phase returns the current phase.
func (s *Settler) Phase() SettlePhase {
	return s.phase
}

// Wait returns the time left before the next step.
func (s *Settler) Wait() time.Duration {
	return s.wait
}

// Tick advances the sequence by dt and returns the steps that ran.
// Time left over after a step carries into the next wait.
func (s *Settler) Tick(dt time.Duration) []SettleStep {
	var steps []SettleStep
	for s.phase != SettleIdle {
		if s.wait > dt {
			s.wait -= dt
			return steps
		}
		dt -= s.wait
		steps = append(steps, s.advance())
	}
	return steps
}

// Finish runs every remaining step immediately.
func (s *Settler) Finish() []SettleStep {
	var steps []SettleStep
	for s.phase != SettleIdle {
		steps = append(steps, s.advance())
	}
	return steps
}

func (s *Settler) advance() SettleStep {
	switch s.phase {
	case SettlePop:
		s.phase = SettleDrop
		s.wait = s.timings.Drop
		return SettleStep{Phase: SettleDrop, Moves: s.grid.ResolveGravity()}
	case SettleDrop:
		spawned := s.grid.RefillGrid()
		s.grid.SettleFalling()
		s.phase = SettleFill
		s.wait = s.timings.Fill
		return SettleStep{Phase: SettleFill, Spawned: spawned}
	default:
		s.phase = SettleIdle
		s.wait = 0
		return SettleStep{Phase: SettleIdle}
	}
}
