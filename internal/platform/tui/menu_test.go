package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ponpon/internal/config"
	"github.com/vovakirdan/ponpon/internal/core"
	_ "github.com/vovakirdan/ponpon/internal/games/ponpon"
)

func pressMenu(m MenuModel, msgs ...tea.KeyMsg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func TestMenuListsModes(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), config.DifficultyNormal)

	if len(m.items) != 2 {
		t.Fatalf("menu has %d items, expected 2", len(m.items))
	}
	if m.items[0].GameID != "ponpon" || m.items[1].GameID != "ponpon_blitz" {
		t.Errorf("items = %+v", m.items)
	}
	if m.items[0].Description == "" {
		t.Error("menu items should carry the mode description")
	}
}

func TestMenuDifficulty(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), config.DifficultyHard)
	if m.Difficulty() != config.DifficultyHard {
		t.Fatalf("Difficulty() = %s, expected hard", m.Difficulty())
	}

	right := tea.KeyMsg{Type: tea.KeyRight}
	left := tea.KeyMsg{Type: tea.KeyLeft}

	m = pressMenu(m, right)
	if m.Difficulty() != config.DifficultyFixed {
		t.Errorf("after right: %s, expected fixed", m.Difficulty())
	}
	m = pressMenu(m, right)
	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("selector should wrap to easy, got %s", m.Difficulty())
	}
	m = pressMenu(m, left, left)
	if m.Difficulty() != config.DifficultyHard {
		t.Errorf("after two lefts: %s, expected hard", m.Difficulty())
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), config.DifficultyNormal)
	m = pressMenu(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() == nil {
		t.Fatal("enter should select a mode")
	}
	if m.Selected().GameID != "ponpon_blitz" {
		t.Errorf("selected %q, expected ponpon_blitz", m.Selected().GameID)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := pressMenu(NewMenuModel(nil, core.DefaultConfig(), ""), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	m = pressMenu(NewMenuModel(nil, core.DefaultConfig(), ""), runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit the menu")
	}
	if m.View() != "" {
		t.Error("a quitting menu renders nothing")
	}
}
