package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/ponpon/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColor(2, 0, '●', core.ColorRed)
	s.SetCell(3, 0, core.Cell{Rune: '●', Color: core.ColorRed, Inverse: true})
	s.DrawText(0, 1, "cd")

	lines := strings.Split(RenderScreen(s), "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "ab●●  " {
		t.Errorf("line 0 = %q, expected %q", lines[0], "ab●●  ")
	}
	if lines[1] != "cd    " {
		t.Errorf("line 1 = %q, expected %q", lines[1], "cd    ")
	}
}

func TestCellStyle(t *testing.T) {
	if !cellStyle(core.ColorRed, true).GetReverse() {
		t.Error("inverse cells should render reversed")
	}
	if cellStyle(core.ColorRed, false).GetReverse() {
		t.Error("plain cells should not render reversed")
	}
	// Unknown colours fall back to the default style
	if cellStyle(core.Color(200), false).GetReverse() {
		t.Error("unknown colour should use the default style")
	}
}
