package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ponpon/internal/storage"
)

func boardStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	rounds := []storage.RoundStats{
		{GameID: "ponpon", Score: 400, MaxCombo: 3, LongestChain: 5, FeverCount: 0, TilesCleared: 40, Chains: 9, Duration: time.Minute},
		{GameID: "ponpon", Score: 1200, MaxCombo: 17, LongestChain: 13, FeverCount: 2, TilesCleared: 120, Chains: 21, Duration: time.Minute},
		{GameID: "ponpon_blitz", Score: 250, MaxCombo: 6, LongestChain: 4, TilesCleared: 30, Chains: 7, Duration: 30 * time.Second},
	}
	for _, r := range rounds {
		if _, err := store.SaveRoundStats(r); err != nil {
			t.Fatalf("SaveRoundStats() failed: %v", err)
		}
		if _, err := store.SaveScore(r.GameID, r.Score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	return store
}

func pressBoard(m ScoreboardModel, msgs ...tea.KeyMsg) ScoreboardModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(ScoreboardModel)
	}
	return m
}

func TestScoreboardListsRoundsBestFirst(t *testing.T) {
	m := NewScoreboardModel(boardStore(t), 100, 30)

	if len(m.rounds) != 2 {
		t.Fatalf("loaded %d rounds, expected 2", len(m.rounds))
	}
	best := m.Selected()
	if best == nil || best.Score != 1200 {
		t.Fatalf("Selected() = %+v, expected the 1200 round", best)
	}

	rows := m.table.Rows()
	if got := rows[0][:6]; strings.Join(got, " ") != "1 1200 x17 13 2 120" {
		t.Errorf("first row = %v", got)
	}
	if len(rows[0]) != 7 {
		t.Errorf("wide board should carry the date column, got %d cells", len(rows[0]))
	}

	view := m.View()
	for _, want := range []string{"BEST ROUNDS", "Combo", "Chain", "Fevers", "21 chains in 1m0s", "2 played"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = pressBoard(m, tea.KeyMsg{Type: tea.KeyDown})
	if r := m.Selected(); r == nil || r.Score != 400 {
		t.Errorf("after down Selected() = %+v, expected the 400 round", r)
	}
}

func TestScoreboardSwitchesMode(t *testing.T) {
	m := NewScoreboardModel(boardStore(t), 100, 30)

	m = pressBoard(m, tea.KeyMsg{Type: tea.KeyTab})
	if len(m.rounds) != 1 || m.rounds[0].GameID != "ponpon_blitz" {
		t.Fatalf("after tab rounds = %+v", m.rounds)
	}

	m = pressBoard(m, tea.KeyMsg{Type: tea.KeyLeft})
	if len(m.rounds) != 2 || m.rounds[0].GameID != "ponpon" {
		t.Errorf("after left rounds = %+v", m.rounds)
	}
}

func TestScoreboardNarrowDropsDate(t *testing.T) {
	m := NewScoreboardModel(boardStore(t), 100, 30)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 50, Height: 20})
	m = next.(ScoreboardModel)

	rows := m.table.Rows()
	if len(rows) != 2 || len(rows[0]) != 6 {
		t.Errorf("narrow board rows = %v", rows)
	}
}

func TestScoreboardEmptyAndExit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if m.Selected() != nil {
		t.Error("empty board should have no selection")
	}
	if !strings.Contains(m.View(), "No rounds played") {
		t.Error("empty board should say so")
	}

	back := pressBoard(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	if !back.IsGoingBack() || back.IsQuitting() {
		t.Error("b should return to the menu")
	}
	quit := pressBoard(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !quit.IsQuitting() || quit.IsGoingBack() {
		t.Error("q should quit")
	}
}
