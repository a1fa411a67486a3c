package ponpon

import "github.com/vovakirdan/ponpon/internal/games/ponpon/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick   uint64
	Mode   string
	Cursor core.Coord
	Hint   []core.Coord
	Round  core.Snapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   g.tick,
		Mode:   string(g.mode),
		Cursor: g.cursor,
		Hint:   append([]core.Coord(nil), g.hint...),
	}
	if g.round != nil {
		s.Round = g.round.Snapshot()
	}
	return s
}
