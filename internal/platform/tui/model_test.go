package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ponpon/internal/core"
)

// stubGame records what the model asks of it.
type stubGame struct {
	resets   int
	resized  [2]int
	lastStep core.InputFrame
	state    core.GameState
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(cfg core.RuntimeConfig) { g.resets++ }
func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Resize(w, h int) { g.resized = [2]int{w, h} }
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.lastStep = in.Clone()
	return core.StepResult{State: g.state}
}

func newStubModel(g *stubGame) Model {
	return NewModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
}

func TestModelMouseReachesGame(t *testing.T) {
	g := &stubGame{}
	m := newStubModel(g)

	next, _ := m.Update(tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	next, _ = next.Update(tea.MouseMsg{X: 6, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	next.Update(TickMsg{})

	if len(g.lastStep.Pointer) != 2 {
		t.Fatalf("game saw %d pointer events, expected 2", len(g.lastStep.Pointer))
	}
	if ev := g.lastStep.Pointer[0]; ev.Kind != core.PointerPress || ev.X != 5 || ev.Y != 3 {
		t.Errorf("first event = %+v, expected press at (5,3)", ev)
	}
	if g.lastStep.Pointer[1].Kind != core.PointerRelease {
		t.Errorf("second event = %v, expected release", g.lastStep.Pointer[1].Kind)
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	g := &stubGame{}
	m := newStubModel(g)

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resized != [2]int{100, 30} {
		t.Errorf("Resize got %v, expected [100 30]", g.resized)
	}
	if g.resets != 0 {
		t.Errorf("game was reset %d times on resize", g.resets)
	}
}

func TestModelKeys(t *testing.T) {
	t.Run("quit", func(t *testing.T) {
		m := newStubModel(&stubGame{})
		next, cmd := m.Update(runeKey('q'))
		if cmd == nil || !next.(Model).quitting {
			t.Error("q should quit")
		}
	})

	t.Run("back only after time up", func(t *testing.T) {
		g := &stubGame{}
		m := newStubModel(g)
		next, cmd := m.Update(runeKey('b'))
		if cmd != nil || next.(Model).BackToMenu() {
			t.Error("b during a round should not leave")
		}

		g.state.GameOver = true
		next, _ = next.Update(TickMsg{})
		next, cmd = next.Update(runeKey('b'))
		if cmd == nil || !next.(Model).BackToMenu() {
			t.Error("b on the result screen should return to the menu")
		}
	})

	t.Run("restart after time up", func(t *testing.T) {
		g := &stubGame{state: core.GameState{GameOver: true}}
		m := newStubModel(g)
		next, _ := m.Update(TickMsg{})
		next, _ = next.Update(runeKey('r'))
		next.Update(TickMsg{})
		if g.resets != 1 {
			t.Errorf("resets = %d, expected 1", g.resets)
		}
	})

	t.Run("actions reach the game", func(t *testing.T) {
		g := &stubGame{}
		m := newStubModel(g)
		next, _ := m.Update(runeKey('?'))
		next.Update(TickMsg{})
		if !g.lastStep.Has(core.ActionHint) {
			t.Error("hint key did not reach the game")
		}
	})
}
