package core

import (
	"fmt"
	"math/rand"
	"time"
)

// RoundState is the lifecycle state of a round.
type RoundState int

const (
	StateReady RoundState = iota
	StatePlaying
	StatePaused
	StateResult
)

// String returns the state name.
func (s RoundState) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateResult:
		return "Result"
	default:
		return "Unknown"
	}
}

// Phase is the state as shown to the player. Fever is a flag on Playing,
// surfaced here as its own phase.
type Phase int

const (
	PhaseReady Phase = iota
	PhasePlaying
	PhaseFever
	PhasePaused
	PhaseResult
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "Ready"
	case PhasePlaying:
		return "Playing"
	case PhaseFever:
		return "Fever"
	case PhasePaused:
		return "Paused"
	default:
		return "Result"
	}
}

// HighScoreStore persists the single high-score value for a round.
type HighScoreStore interface {
	HighScore() (int, error)
	SetHighScore(score int) error
}

// Summary is the final tally of a round.
type Summary struct {
	Score        int
	HighScore    int
	NewRecord    bool
	MaxCombo     int
	TilesCleared int
	FeverCount   int
	Chains       int
	LongestChain int
	Duration     time.Duration
}

// Round wires the grid, selector, trackers and score keeper into one
// playable round.
//
// A round starts in Ready and enters Playing by itself once the ready
// delay has elapsed. It ends in Result when the round timer runs out.
// All time passes through Tick; nothing advances between ticks.
type Round struct {
	cfg    Config
	grid   *Grid
	sel    *Selector
	combo  *ComboTracker
	fever  *FeverTracker
	keeper *ScoreKeeper
	timer  *RoundTimer
	settle *Settler
	bus    *Bus
	store  HighScoreStore

	state     RoundState
	readyLeft time.Duration
	played    time.Duration
	ticks     uint64

	chains       int
	tilesCleared int
	longestChain int
}

// NewRound validates cfg, fills a fresh board and reads the stored high
// score. A nil store starts from a high score of zero.
func NewRound(cfg Config, rng *rand.Rand, store HighScoreStore) (*Round, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewGrid(cfg.Width, cfg.Height, cfg.TileTypes, rng)
	if err != nil {
		return nil, err
	}

	r := &Round{
		cfg:       cfg,
		grid:      grid,
		sel:       NewSelector(grid, cfg.Score.MinChain),
		combo:     NewComboTracker(cfg.ComboWindow, cfg.Score.Combo),
		fever:     NewFeverTracker(cfg.Fever),
		timer:     NewRoundTimer(cfg.RoundDuration),
		settle:    NewSettler(grid, cfg.Settle),
		bus:       NewBus(),
		store:     store,
		state:     StateReady,
		readyLeft: cfg.ReadyDelay,
	}

	high := 0
	if store != nil {
		h, err := store.HighScore()
		if err != nil {
			r.bus.Publish(StoreFailedEvent{Op: "read", Err: err})
		} else {
			high = h
		}
	}
	r.keeper = NewScoreKeeper(high)

	r.bus.Publish(TilesSpawnedEvent{Tiles: tileValues(grid.InitializeGrid())})
	return r, nil
}

// Subscribe registers a listener for round events.
func (r *Round) Subscribe(fn Listener) SubscriptionID {
	return r.bus.Subscribe(fn)
}

// Unsubscribe removes a listener.
func (r *Round) Unsubscribe(id SubscriptionID) bool {
	return r.bus.Unsubscribe(id)
}

// Flush delivers queued events without advancing time.
func (r *Round) Flush() {
	r.bus.Dispatch()
}

// Tick advances the round by dt and then delivers queued events.
func (r *Round) Tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	switch r.state {
	case StateReady:
		r.readyLeft -= dt
		if r.readyLeft <= 0 {
			r.readyLeft = 0
			r.setState(StatePlaying)
		}
	case StatePlaying:
		r.tickPlaying(dt)
	}
	r.bus.Dispatch()
}

func (r *Round) tickPlaying(dt time.Duration) {
	r.ticks++
	r.played += dt

	expired := r.timer.Tick(dt)

	if count := r.combo.Count(); r.combo.Tick(dt) {
		r.bus.Publish(ComboBrokenEvent{Count: count})
	}
	if r.fever.Tick(dt) {
		r.bus.Publish(FeverEndedEvent{})
	}
	r.publishSettle(r.settle.Tick(dt))

	if expired {
		r.finish()
	}
}

func (r *Round) finish() {
	r.publishSettle(r.settle.Finish())
	if r.sel.Building() {
		n := r.sel.Len()
		r.sel.Cancel()
		r.bus.Publish(ChainCancelledEvent{Length: n})
		r.bus.Publish(SelectionChangedEvent{})
	}
	r.setState(StateResult)
	r.bus.Publish(RoundEndedEvent{Summary: r.Summary()})
}

func (r *Round) publishSettle(steps []SettleStep) {
	for _, step := range steps {
		switch step.Phase {
		case SettleDrop:
			if len(step.Moves) == 0 {
				continue
			}
			moves := make([]TileMove, len(step.Moves))
			for i, m := range step.Moves {
				moves[i] = TileMove{ID: m.Tile.ID, From: m.From, To: m.To}
			}
			r.bus.Publish(TilesMovedEvent{Moves: moves})
		case SettleFill:
			if len(step.Spawned) > 0 {
				r.bus.Publish(TilesSpawnedEvent{Tiles: tileValues(step.Spawned)})
			}
		}
	}
}

func (r *Round) setState(to RoundState) {
	if r.state == to {
		return
	}
	from := r.state
	r.state = to
	r.bus.Publish(StateChangedEvent{From: from, To: to})
}

// AcceptingInput reports whether pointer events are processed right now.
// Input is locked outside Playing and while the board settles.
func (r *Round) AcceptingInput() bool {
	return r.state == StatePlaying && !r.settle.Active()
}

// PointerDown starts a selection at c. Coordinates off the board and
// presses while input is locked are ignored.
func (r *Round) PointerDown(c Coord) error {
	if !r.AcceptingInput() || !r.grid.InBounds(c) || r.sel.Building() {
		return nil
	}
	t := r.grid.At(c)
	if t == nil || t.State != TileIdle {
		return nil
	}
	if err := r.sel.Begin(c); err != nil {
		return fmt.Errorf("pointer down: %w", err)
	}
	r.bus.Publish(SelectionChangedEvent{Path: r.sel.Path()})
	return nil
}

// PointerMove offers c to the selection in progress.
func (r *Round) PointerMove(c Coord) error {
	if !r.AcceptingInput() || !r.sel.Building() || !r.grid.InBounds(c) {
		return nil
	}
	res, err := r.sel.Extend(c)
	if err != nil {
		return fmt.Errorf("pointer move: %w", err)
	}
	if res != ExtendIgnored {
		r.bus.Publish(SelectionChangedEvent{Path: r.sel.Path()})
	}
	return nil
}

// PointerUp commits the selection in progress.
func (r *Round) PointerUp() error {
	if !r.AcceptingInput() || !r.sel.Building() {
		return nil
	}
	res, err := r.sel.Commit()
	if err != nil {
		return fmt.Errorf("pointer up: %w", err)
	}
	r.bus.Publish(SelectionChangedEvent{})
	if !res.Cleared {
		r.bus.Publish(ChainCancelledEvent{Length: res.Length})
		return nil
	}
	r.applyChain(res)
	return nil
}

// applyChain scores a cleared chain against the combo and fever state
// from before the chain, then updates both trackers and starts settling.
func (r *Round) applyChain(res ChainResult) {
	tiles := len(res.Tiles)
	feverBefore := r.fever.Active()
	points := Calculate(r.cfg.Score, tiles, res.Length, r.combo.Count(), feverBefore)

	r.bus.Publish(TilesRemovedEvent{Tiles: tileValues(res.Tiles)})
	r.addPoints(points, false)

	r.combo.Increment()
	r.bus.Publish(ComboChangedEvent{
		Count:      r.combo.Count(),
		Multiplier: r.combo.Multiplier(r.combo.Count()),
	})

	gauge := r.fever.Gauge()
	if r.fever.AddGauge(tiles) {
		r.bus.Publish(FeverStartedEvent{Duration: r.fever.Remaining()})
	} else if r.fever.Gauge() != gauge {
		r.bus.Publish(FeverGaugeChangedEvent{Gauge: r.fever.Gauge(), Threshold: r.fever.Threshold()})
	}

	r.chains++
	r.tilesCleared += tiles
	r.longestChain = max(r.longestChain, res.Length)

	r.bus.Publish(ChainClearedEvent{
		Length:     res.Length,
		Tiles:      tiles,
		Points:     points,
		ComboCount: r.combo.Count(),
		Fever:      feverBefore,
		CentroidX:  res.CentroidX,
		CentroidY:  res.CentroidY,
	})

	if b := r.cfg.Bonus; b.ChainLength > 0 && res.Length >= b.ChainLength {
		if b.Time > 0 {
			r.timer.AddTime(b.Time)
			r.bus.Publish(TimeAddedEvent{Added: b.Time, Remaining: r.timer.Remaining()})
		}
		if b.Points > 0 {
			r.addPoints(b.Points, true)
		}
	}

	r.settle.Start()
}

func (r *Round) addPoints(points int, bonus bool) {
	var changed, first bool
	if bonus {
		changed, first = r.keeper.AddBonus(points)
	} else {
		changed, first = r.keeper.Add(points)
	}
	r.bus.Publish(ScoreChangedEvent{
		Score:     r.keeper.Score(),
		Delta:     points,
		HighScore: r.keeper.HighScore(),
	})
	if first {
		r.bus.Publish(NewRecordEvent{Score: r.keeper.Score(), Previous: r.keeper.PreviousHighScore()})
	}
	if changed && r.store != nil {
		if err := r.store.SetHighScore(r.keeper.HighScore()); err != nil {
			r.bus.Publish(StoreFailedEvent{Op: "write", Err: err})
		}
	}
}

// Pause freezes every timer and the settle sequence. A selection in
// progress is dropped. It returns false when the round is not Playing.
func (r *Round) Pause() bool {
	if r.state != StatePlaying {
		return false
	}
	if r.sel.Building() {
		n := r.sel.Len()
		r.sel.Cancel()
		r.bus.Publish(SelectionChangedEvent{})
		r.bus.Publish(ChainCancelledEvent{Length: n})
	}
	r.setState(StatePaused)
	return true
}

// Resume continues a paused round exactly where it stopped.
func (r *Round) Resume() bool {
	if r.state != StatePaused {
		return false
	}
	r.setState(StatePlaying)
	return true
}

// TogglePause pauses a playing round or resumes a paused one.
func (r *Round) TogglePause() bool {
	if r.state == StatePaused {
		return r.Resume()
	}
	return r.Pause()
}

// State returns the lifecycle state.
func (r *Round) State() RoundState {
	return r.state
}

// Phase returns the state with fever surfaced as its own phase.
func (r *Round) Phase() Phase {
	switch r.state {
	case StateReady:
		return PhaseReady
	case StatePaused:
		return PhasePaused
	case StateResult:
		return PhaseResult
	}
	if r.fever.Active() {
		return PhaseFever
	}
	return PhasePlaying
}

// Config returns the configuration the round was built with.
func (r *Round) Config() Config { return r.cfg }

// Grid returns the board. Callers must not mutate it.
func (r *Round) Grid() *Grid { return r.grid }

// Selection returns the current path.
func (r *Round) Selection() []Coord { return r.sel.Path() }

// Selecting reports whether a chain is being dragged.
func (r *Round) Selecting() bool { return r.sel.Building() }

// Settling reports whether the board is mid-settle.
func (r *Round) Settling() bool { return r.settle.Active() }

// SettlePhase returns the settle step being waited on.
func (r *Round) SettlePhase() SettlePhase { return r.settle.Phase() }

// Score returns the running score.
func (r *Round) Score() int { return r.keeper.Score() }

// HighScore returns the best of the stored high score and this round.
func (r *Round) HighScore() int { return r.keeper.HighScore() }

// NewRecord reports whether this round beat the stored high score.
func (r *Round) NewRecord() bool { return r.keeper.NewRecord() }

// TimeLeft returns the round time remaining.
func (r *Round) TimeLeft() time.Duration { return r.timer.Remaining() }

// TimeFraction returns the remaining share of the round.
func (r *Round) TimeFraction() float64 { return r.timer.Fraction() }

// ReadyLeft returns the countdown before play starts.
func (r *Round) ReadyLeft() time.Duration { return r.readyLeft }

// Combo returns the combo state.
func (r *Round) Combo() ComboState { return r.combo.State() }

// ComboMultiplier returns the multiplier the next chain would get.
func (r *Round) ComboMultiplier() float64 { return r.combo.Multiplier(r.combo.Count()) }

// Fever returns the fever state.
func (r *Round) Fever() FeverState { return r.fever.State() }

// FeverThreshold returns the gauge value that starts fever.
func (r *Round) FeverThreshold() int { return r.fever.Threshold() }

// Ticks returns the number of playing ticks so far.
func (r *Round) Ticks() uint64 { return r.ticks }

// Summary returns the tally so far. It is final once the round is in Result.
func (r *Round) Summary() Summary {
	return Summary{
		Score:        r.keeper.Score(),
		HighScore:    r.keeper.HighScore(),
		NewRecord:    r.keeper.NewRecord(),
		MaxCombo:     r.combo.Max(),
		TilesCleared: r.tilesCleared,
		FeverCount:   r.fever.Activations(),
		Chains:       r.chains,
		LongestChain: r.longestChain,
		Duration:     r.played,
	}
}

// Snapshot is a comparable view of a round for determinism checks.
type Snapshot struct {
	State     RoundState
	Score     int
	HighScore int
	NewRecord bool
	TimeLeft  time.Duration
	Combo     ComboState
	Fever     FeverState
	Settle    SettlePhase
	Board     []int
	Path      []Coord
}

// Snapshot captures the current round state.
func (r *Round) Snapshot() Snapshot {
	return Snapshot{
		State:     r.state,
		Score:     r.keeper.Score(),
		HighScore: r.keeper.HighScore(),
		NewRecord: r.keeper.NewRecord(),
		TimeLeft:  r.timer.Remaining(),
		Combo:     r.combo.State(),
		Fever:     r.fever.State(),
		Settle:    r.settle.Phase(),
		Board:     r.grid.Snapshot(),
		Path:      r.sel.Path(),
	}
}

func tileValues(tiles []*Tile) []Tile {
	out := make([]Tile, len(tiles))
	for i, t := range tiles {
		out[i] = *t
	}
	return out
}
