package ponpon

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/ponpon/internal/core"
	"github.com/vovakirdan/ponpon/internal/games/ponpon/core"
)

// Tile palette, indexed by tile type. Types past the palette wrap around.
var (
	tileColors = []platformcore.Color{
		platformcore.ColorRed,
		platformcore.ColorGreen,
		platformcore.ColorYellow,
		platformcore.ColorBlue,
		platformcore.ColorMagenta,
		platformcore.ColorCyan,
		platformcore.ColorOrange,
		platformcore.ColorWhite,
	}
	tileGlyphs = []rune{'●', '▲', '■', '◆', '★', '♥', '♣', '♠'}
)

func tileColor(t core.TileType) platformcore.Color {
	return tileColors[int(t)%len(tileColors)]
}

func tileGlyph(t core.TileType) rune {
	return tileGlyphs[int(t)%len(tileGlyphs)]
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.round == nil {
		msg := "no error"
		if g.loadErr != nil {
			msg = g.loadErr.Error()
		}
		g.drawOverlay(dst, g.screenW/2, g.screenH/2, "Cannot start round", msg)
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderPopups(dst)
	dst.DrawTextColor(1, g.screenH-1, g.Controls(), platformcore.ColorGray)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws score, time, combo and fever above the board.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	r := g.round
	x := g.layout.bounds().X
	w := g.layout.bounds().W

	title := strings.ToUpper(g.Title())
	dst.DrawTextColor(x, 0, title, platformcore.ColorCyan)
	score := fmt.Sprintf("Score %d  Best %d", r.Score(), r.HighScore())
	dst.DrawText(x+w-utf8.RuneCountInString(score), 0, score)
	if r.NewRecord() {
		dst.DrawTextColor(x+utf8.RuneCountInString(title)+2, 0, "NEW RECORD", platformcore.ColorBrightYellow)
	}

	// Time bar
	left := r.TimeLeft()
	label := fmt.Sprintf("%4.1fs ", left.Seconds())
	dst.DrawText(x, 1, label)
	barW := w - utf8.RuneCountInString(label)
	drawBar(dst, x+utf8.RuneCountInString(label), 1, barW, r.TimeFraction(), timeColor(r.TimeFraction()))

	// Combo on the left, fever on the right
	combo := r.Combo()
	if combo.Count > 0 {
		dst.DrawTextColor(x, 2, fmt.Sprintf("Combo %d x%.1f", combo.Count, r.ComboMultiplier()), platformcore.ColorBrightGreen)
	}
	fever := r.Fever()
	switch {
	case fever.Active:
		text := fmt.Sprintf("FEVER %.1fs", fever.Remaining.Seconds())
		dst.DrawTextColor(x+w-utf8.RuneCountInString(text), 2, text, platformcore.ColorBrightMagenta)
	case r.Config().Fever.Enabled:
		const gaugeW = 10
		frac := float64(fever.Gauge) / float64(max(r.FeverThreshold(), 1))
		drawBar(dst, x+w-gaugeW, 2, gaugeW, frac, platformcore.ColorMagenta)
		dst.DrawTextColor(x+w-gaugeW-6, 2, "Fever", platformcore.ColorGray)
	}

	dst.DrawHLine(0, 3, dst.Width(), '─')
}

// drawBar draws a horizontal gauge filled to frac.
func drawBar(dst *platformcore.Screen, x, y, w int, frac float64, c platformcore.Color) {
	if w <= 0 {
		return
	}
	filled := int(frac*float64(w) + 0.5)
	filled = platformcore.Clamp(filled, 0, w)
	for i := range w {
		if i < filled {
			dst.SetColor(x+i, y, '█', c)
		} else {
			dst.SetColor(x+i, y, '░', platformcore.ColorGray)
		}
	}
}

func timeColor(frac float64) platformcore.Color {
	switch {
	case frac > 0.5:
		return platformcore.ColorGreen
	case frac > 0.2:
		return platformcore.ColorYellow
	default:
		return platformcore.ColorRed
	}
}

// renderBoard draws the frame, tiles, the selection path and the cursor.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	r := g.round
	l := g.layout
	frameColor := platformcore.ColorGray
	if r.Phase() == core.PhaseFever {
		frameColor = platformcore.ColorBrightMagenta
	}
	drawColorBox(dst, l.bounds(), frameColor)

	path := r.Selection()
	inPath := make(map[core.Coord]bool, len(path))
	for _, c := range path {
		inPath[c] = true
	}
	inHint := make(map[core.Coord]bool, len(g.hint))
	for _, c := range g.hint {
		inHint[c] = true
	}

	r.Grid().Each(func(c core.Coord, t *core.Tile) {
		sx, sy := l.screenPos(c)
		if t == nil {
			dst.SetColor(sx, sy, '·', platformcore.ColorGray)
			return
		}

		cell := platformcore.Cell{Rune: tileGlyph(t.Type), Color: tileColor(t.Type)}
		switch {
		case t.State == core.TileClearing:
			cell.Rune = '✦'
			cell.Color = platformcore.ColorBrightWhite
		case inPath[c]:
			cell.Color = cell.Color.Bright()
			cell.Inverse = true
		case inHint[c]:
			cell.Color = cell.Color.Bright()
		}
		dst.SetCell(sx, sy, cell)
		dst.SetCell(sx+1, sy, cell)
	})

	for i := 1; i < len(path); i++ {
		g.drawConnector(dst, path[i-1], path[i])
	}

	if (r.State() == core.StatePlaying && !r.Selecting()) || g.keyDrag {
		sx, sy := l.screenPos(g.cursor)
		dst.SetColor(sx-1, sy, '[', platformcore.ColorBrightWhite)
		dst.SetColor(sx+2, sy, ']', platformcore.ColorBrightWhite)
	}
}

// drawConnector draws the link between two adjacent path cells in the
// gap between them.
func (g *Game) drawConnector(dst *platformcore.Screen, a, b core.Coord) {
	ax, ay := g.layout.screenPos(a)
	bx, by := g.layout.screenPos(b)
	c := platformcore.ColorBrightWhite

	switch {
	case ay == by:
		dst.SetColor(min(ax, bx)+2, ay, '─', c)
	case ax == bx:
		y := min(ay, by) + 1
		dst.SetColor(ax, y, '│', c)
		dst.SetColor(ax+1, y, '│', c)
	default:
		r := '╲'
		if (bx-ax)*(by-ay) < 0 {
			r = '╱'
		}
		dst.SetColor(min(ax, bx)+2, min(ay, by)+1, r, c)
	}
}

// renderPopups draws "+points" labels rising from cleared chains.
func (g *Game) renderPopups(dst *platformcore.Screen) {
	for _, p := range g.popups {
		sx := g.layout.originX + int(p.x*cellW+0.5)
		sy := g.layout.originY + int((float64(g.layout.h-1)-p.y)*cellH+0.5)
		rise := int(2 * (1 - float64(p.left)/float64(popupDuration)))
		color := platformcore.ColorBrightYellow
		if p.fever {
			color = platformcore.ColorBrightMagenta
		}
		dst.DrawTextColor(sx, sy-rise, p.text, color)
	}
}

// renderOverlays draws ready, pause and result boxes over the board.
func (g *Game) renderOverlays(dst *platformcore.Screen) {
	cx, cy := g.layout.bounds().Center()
	r := g.round

	switch r.State() {
	case core.StateReady:
		secs := int((r.ReadyLeft() + time.Second - 1) / time.Second)
		g.drawOverlay(dst, cx, cy, "READY", fmt.Sprintf("%d", max(secs, 1)))
	case core.StatePaused:
		g.drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	case core.StateResult:
		s, _ := g.Summary()
		lines := []string{"TIME UP", fmt.Sprintf("Score %d", s.Score)}
		if s.NewRecord {
			lines = append(lines, "NEW RECORD!")
		} else {
			lines = append(lines, fmt.Sprintf("Best %d", s.HighScore))
		}
		lines = append(lines,
			fmt.Sprintf("Chains %d  Longest %d", s.Chains, s.LongestChain),
			fmt.Sprintf("Tiles %d  Max combo %d", s.TilesCleared, s.MaxCombo),
			fmt.Sprintf("Fever x%d", s.FeverCount),
			"R: Restart  Q: Quit",
		)
		g.drawOverlay(dst, cx, cy, lines...)
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *platformcore.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	box := platformcore.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)

	// Clear area behind overlay
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}

// drawColorBox draws a box outline in one colour.
func drawColorBox(dst *platformcore.Screen, r platformcore.Rect, c platformcore.Color) {
	dst.DrawBox(r)
	for x := r.X; x < r.Right(); x++ {
		recolor(dst, x, r.Y, c)
		recolor(dst, x, r.Bottom()-1, c)
	}
	for y := r.Y; y < r.Bottom(); y++ {
		recolor(dst, r.X, y, c)
		recolor(dst, r.Right()-1, y, c)
	}
}

func recolor(dst *platformcore.Screen, x, y int, c platformcore.Color) {
	cell := dst.GetCell(x, y)
	cell.Color = c
	dst.SetCell(x, y, cell)
}
