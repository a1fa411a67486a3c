// Package ponpon provides the ponpon chain-matching game for the arcade.
// The rules live in the core subpackage; this package maps platform input
// onto a round, draws it and persists results.
package ponpon

import (
	"math/rand"
	"strconv"
	"time"

	platformcore "github.com/vovakirdan/ponpon/internal/core"
	"github.com/vovakirdan/ponpon/internal/games/ponpon/core"
	"github.com/vovakirdan/ponpon/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "ponpon"
	ModeBlitz   Mode = "ponpon_blitz"
)

const (
	hintDuration  = 2 * time.Second
	popupDuration = 900 * time.Millisecond
)

// popup is a floating "+points" label over the last cleared chain.
type popup struct {
	text  string
	x, y  float64 // grid coordinates of the chain centroid
	left  time.Duration
	fever bool
}

// Game implements ponpon on top of a core.Round.
type Game struct {
	mode    Mode
	rng     *rand.Rand
	round   *core.Round
	cfg     core.Config
	loadErr error

	tick uint64
	dt   time.Duration

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
	layout   boardLayout

	// Keyboard play
	cursor  core.Coord
	keyDrag bool // chain started with the select key

	hint     []core.Coord
	hintLeft time.Duration
	popups   []popup

	summary    *core.Summary
	statsSaved bool
}

// New creates a classic ponpon game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewBlitz creates a blitz ponpon game.
func NewBlitz() *Game {
	return &Game{mode: ModeBlitz}
}

func init() {
	registry.Register(string(ModeClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(ModeBlitz), func() registry.Game {
		return NewBlitz()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeBlitz {
		return "Ponpon Blitz"
	}
	return "Ponpon"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.mode == ModeBlitz {
		return "30 seconds, four colours, long chains buy time"
	}
	return "60 seconds to chain as many tiles as you can"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.dt = tickDuration(cfg.TickRate)
	g.keyDrag = false
	g.hint = nil
	g.hintLeft = 0
	g.popups = nil
	g.summary = nil
	g.statsSaved = false
	g.round = nil

	yamlCfg, err := LoadConfig(g.ID())
	if err != nil {
		g.loadErr = err
		logger.Error("cannot load config", "game", g.ID(), "err", err)
		return
	}
	g.cfg = CoreConfig(yamlCfg)

	var store core.HighScoreStore
	if scoreStore != nil {
		store = scoreStore.Records(g.ID())
	}

	round, err := core.NewRound(g.cfg, g.rng, store)
	if err != nil {
		g.loadErr = err
		logger.Error("cannot start round", "game", g.ID(), "err", err)
		return
	}
	g.loadErr = nil
	g.round = round
	g.round.Subscribe(newEventLogger(logger.With("game", g.ID())))
	g.round.Subscribe(g.onEvent)
	g.cursor = core.C(g.cfg.Width/2, g.cfg.Height/2)

	g.calculateLayout()
	logger.Debug("round created", "game", g.ID(), "seed", cfg.Seed, "board", g.cfg.Width*g.cfg.Height)
}

// Resize recomputes the layout without restarting the round.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.round != nil {
		g.calculateLayout()
	}
}

func tickDuration(rate int) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.round == nil {
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(platformcore.ActionPause) && !g.tooSmall {
		if g.round.TogglePause() {
			g.keyDrag = false
		}
	}

	// A window too small to show the board pauses the round
	if g.tooSmall {
		if g.round.State() == core.StatePlaying {
			g.round.Pause()
			g.keyDrag = false
		}
		g.round.Flush()
		return platformcore.StepResult{State: g.State()}
	}

	for _, ev := range in.Pointer {
		g.handlePointer(ev)
	}
	g.handleKeys(in)

	g.round.Tick(g.dt)
	if g.round.State() != core.StatePaused {
		g.ageEffects(g.dt)
	}

	return platformcore.StepResult{State: g.State()}
}

// handlePointer maps a mouse event onto the board.
func (g *Game) handlePointer(ev platformcore.PointerEvent) {
	c, onBoard := g.layout.cellAt(ev.X, ev.Y)

	switch ev.Kind {
	case platformcore.PointerPress:
		if !onBoard {
			return
		}
		g.keyDrag = false
		g.cursor = c
		g.inputFailed("pointer down", g.round.PointerDown(c))
	case platformcore.PointerDrag:
		if !onBoard {
			return
		}
		g.cursor = c
		g.inputFailed("pointer move", g.round.PointerMove(c))
	case platformcore.PointerRelease:
		g.inputFailed("pointer up", g.round.PointerUp())
	}
}

// inputFailed logs an input event the round rejected with an error.
func (g *Game) inputFailed(op string, err error) {
	if err != nil {
		logger.Warn("round rejected input", "game", g.ID(), "op", op, "err", err)
	}
}

// handleKeys moves the cursor and drives selection from the keyboard.
// Select starts a chain on the cursor; moving extends it; Select again commits.
func (g *Game) handleKeys(in platformcore.InputFrame) {
	if in.Has(platformcore.ActionHint) {
		g.showHint()
	}

	var d core.Coord
	switch {
	case in.Has(platformcore.ActionUp):
		d = core.C(0, 1)
	case in.Has(platformcore.ActionDown):
		d = core.C(0, -1)
	case in.Has(platformcore.ActionLeft):
		d = core.C(-1, 0)
	case in.Has(platformcore.ActionRight):
		d = core.C(1, 0)
	}
	if d != (core.Coord{}) {
		next := g.cursor.Add(d.X, d.Y)
		next.X = platformcore.Clamp(next.X, 0, g.cfg.Width-1)
		next.Y = platformcore.Clamp(next.Y, 0, g.cfg.Height-1)
		g.cursor = next
		if g.keyDrag {
			g.inputFailed("key move", g.round.PointerMove(next))
		}
	}

	if in.Has(platformcore.ActionSelect) {
		if g.round.Selecting() {
			g.inputFailed("key commit", g.round.PointerUp())
			g.keyDrag = false
		} else {
			g.inputFailed("key select", g.round.PointerDown(g.cursor))
			g.keyDrag = g.round.Selecting()
		}
	}

	// A drop by the round (pause, timer) ends keyboard dragging too
	if !g.round.Selecting() {
		g.keyDrag = false
	}
}

// showHint highlights the longest chain currently on the board.
func (g *Game) showHint() {
	if !g.round.AcceptingInput() {
		return
	}
	chain := core.LongestChain(g.round.Grid(), 0, 0)
	if len(chain) < g.cfg.MinChain() {
		g.hint = nil
		return
	}
	g.hint = chain
	g.hintLeft = hintDuration
}

// ageEffects counts down the hint and popups.
func (g *Game) ageEffects(dt time.Duration) {
	if g.hintLeft > 0 {
		g.hintLeft -= dt
		if g.hintLeft <= 0 {
			g.hint = nil
		}
	}

	kept := g.popups[:0]
	for _, p := range g.popups {
		p.left -= dt
		if p.left > 0 {
			kept = append(kept, p)
		}
	}
	g.popups = kept
}

// onEvent keeps presentation state in step with the round.
func (g *Game) onEvent(ev core.Event) {
	switch e := ev.(type) {
	case core.ChainClearedEvent:
		g.popups = append(g.popups, popup{
			text:  "+" + strconv.Itoa(e.Points),
			x:     e.CentroidX,
			y:     e.CentroidY,
			left:  popupDuration,
			fever: e.Fever,
		})
		// The board changed under the hint
		g.hint = nil
		g.hintLeft = 0
	case core.RoundEndedEvent:
		s := e.Summary
		g.summary = &s
		g.saveStats(s)
	}
}

// saveStats stores the finished round once.
func (g *Game) saveStats(s core.Summary) {
	if g.statsSaved || scoreStore == nil {
		return
	}
	g.statsSaved = true
	if _, err := scoreStore.SaveRoundStats(roundStats(g.ID(), s)); err != nil {
		logger.Warn("cannot save round stats", "game", g.ID(), "err", err)
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.round == nil {
		return platformcore.GameState{GameOver: true}
	}
	return platformcore.GameState{
		Score:     g.round.Score(),
		HighScore: g.round.HighScore(),
		NewRecord: g.round.NewRecord(),
		GameOver:  g.round.State() == core.StateResult,
		Paused:    g.round.State() == core.StatePaused,
	}
}

// Round exposes the running round, or nil when it failed to start.
func (g *Game) Round() *core.Round {
	return g.round
}

// Summary returns the final tally once the round has ended.
func (g *Game) Summary() (core.Summary, bool) {
	if g.summary == nil {
		return core.Summary{}, false
	}
	return *g.summary, true
}

// Err returns the error that kept the round from starting, if any.
func (g *Game) Err() error {
	return g.loadErr
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Mouse: drag a chain | Arrows+Space: keyboard chain | ?: Hint | P: Pause | Q: Quit"
}
