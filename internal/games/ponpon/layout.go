package ponpon

import (
	platformcore "github.com/vovakirdan/ponpon/internal/core"
	"github.com/vovakirdan/ponpon/internal/games/ponpon/core"
)

const (
	cellW     = 3 // two glyph columns plus a gap for connectors
	cellH     = 2 // glyph row plus a gap for connectors
	hudHeight = 4
	minWidth  = 44
)

// boardLayout maps grid cells to screen positions. Grid row 0 is the
// bottom row, so it is drawn last.
type boardLayout struct {
	originX int // screen column of the top-left glyph
	originY int // screen row of the top-left glyph
	w, h    int
}

// screenPos returns the screen position of the left glyph of c.
func (l boardLayout) screenPos(c core.Coord) (int, int) {
	return l.originX + c.X*cellW, l.originY + (l.h-1-c.Y)*cellH
}

// cellAt returns the grid cell drawn at screen position (x, y). Gaps
// between tiles belong to no cell.
func (l boardLayout) cellAt(x, y int) (core.Coord, bool) {
	dx, dy := x-l.originX, y-l.originY
	if dx < 0 || dy < 0 || dy%cellH != 0 || dx%cellW >= cellW-1 {
		return core.Coord{}, false
	}
	col, row := dx/cellW, dy/cellH
	if col >= l.w || row >= l.h {
		return core.Coord{}, false
	}
	return core.C(col, l.h-1-row), true
}

// bounds returns the board area including its frame.
func (l boardLayout) bounds() platformcore.Rect {
	return platformcore.NewRect(l.originX-2, l.originY-1, l.w*cellW+3, l.h*cellH+1)
}

// calculateLayout centres the board below the HUD and checks it fits.
func (g *Game) calculateLayout() {
	l := boardLayout{w: g.cfg.Width, h: g.cfg.Height}
	frame := platformcore.NewRect(0, 0, l.w*cellW+3, l.h*cellH+1)

	availH := g.screenH - hudHeight - 1 // footer
	frame.X = (g.screenW - frame.W) / 2
	frame.Y = hudHeight + (availH-frame.H)/2

	l.originX = frame.X + 2
	l.originY = frame.Y + 1
	g.layout = l

	g.tooSmall = g.screenW < minWidth || availH < frame.H || !frame.Fits(g.screenW, g.screenH)
}
