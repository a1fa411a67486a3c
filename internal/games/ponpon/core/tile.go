package core

// TileType identifies the kind of token on a tile.
type TileType uint8

// TileState is the lifecycle state of a tile.
type TileState int

const (
	TileIdle TileState = iota
	TileSelected
	TileFalling
	TileClearing
)

// String returns the state name.
func (s TileState) String() string {
	switch s {
	case TileIdle:
		return "Idle"
	case TileSelected:
		return "Selected"
	case TileFalling:
		return "Falling"
	case TileClearing:
		return "Clearing"
	default:
		return "Unknown"
	}
}

// Tile is a single matchable token.
// A tile is owned by exactly one grid cell; Pos always mirrors that cell.
type Tile struct {
	ID    uint64
	Type  TileType
	Pos   Coord
	State TileState
}

// IsSameType reports whether two tiles carry the same type.
// A nil tile never matches anything.
func IsSameType(a, b *Tile) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Type == b.Type
}
