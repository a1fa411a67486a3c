// Package core implements the PonPon board and round rules: the grid,
// chain selection, settle, combo, fever and scoring. It has no I/O and
// advances only through explicit Tick calls.
package core

import (
	"fmt"
	"math/rand"
)

// MaxTileTypes is the largest tile type count a TileType can hold.
const MaxTileTypes = 256

// Grid is the board: a W×H array of cells, each empty or holding one tile.
// Cells are stored in row-major order: index = y*W + x, row 0 at the bottom.
type Grid struct {
	W int
	H int

	types  int
	cells  []*Tile
	rng    *rand.Rand
	nextID uint64
}

// Move records a tile that changed rows during gravity resolution.
type Move struct {
	Tile *Tile
	From Coord
	To   Coord
}

// NewGrid creates an empty grid. Tile types are drawn from rng.
func NewGrid(w, h, types int, rng *rand.Rand) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	if types <= 0 || types > MaxTileTypes {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTileTypes, types)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}
	return &Grid{
		W:     w,
		H:     h,
		types: types,
		cells: make([]*Tile, w*h),
		rng:   rng,
	}, nil
}

// GridFromSnapshot builds a grid from row-major tile types as returned by
// Snapshot, with -1 for empty cells.
func GridFromSnapshot(w, h, types int, cells []int, rng *rand.Rand) (*Grid, error) {
	g, err := NewGrid(w, h, types, rng)
	if err != nil {
		return nil, err
	}
	if len(cells) != w*h {
		return nil, fmt.Errorf("%w: snapshot has %d cells, want %d", ErrInvalidDimensions, len(cells), w*h)
	}
	for i, v := range cells {
		if v < 0 {
			continue
		}
		if v >= types {
			return nil, fmt.Errorf("%w: cell %d has type %d", ErrInvalidTileTypes, i, v)
		}
		g.nextID++
		g.cells[i] = &Tile{
			ID:   g.nextID,
			Type: TileType(v),
			Pos:  C(i%w, i/w),
		}
	}
	return g, nil
}

// TileTypes returns the number of tile types in play.
func (g *Grid) TileTypes() int {
	return g.types
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// At returns the tile at c, or nil if the cell is empty or out of bounds.
func (g *Grid) At(c Coord) *Tile {
	if !g.InBounds(c) {
		return nil
	}
	return g.cells[g.index(c)]
}

// IsEmpty reports whether the in-bounds cell at c holds no tile.
func (g *Grid) IsEmpty(c Coord) bool {
	return g.InBounds(c) && g.cells[g.index(c)] == nil
}

// SpawnTile places a new tile of uniformly random type at c.
func (g *Grid) SpawnTile(c Coord) (*Tile, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("spawn %v: %w", c, ErrOutOfBounds)
	}
	if g.cells[g.index(c)] != nil {
		return nil, fmt.Errorf("spawn %v: %w", c, ErrCellOccupied)
	}
	g.nextID++
	t := &Tile{
		ID:    g.nextID,
		Type:  TileType(g.rng.Intn(g.types)),
		Pos:   c,
		State: TileIdle,
	}
	g.cells[g.index(c)] = t
	return t, nil
}

// InitializeGrid clears the board and fills every cell.
// Matches present after filling are left alone.
func (g *Grid) InitializeGrid() []*Tile {
	for i := range g.cells {
		g.cells[i] = nil
	}
	return g.RefillGrid()
}

// RemoveTiles empties the given cells and returns the removed tiles in
// Clearing state. All coordinates are validated before anything is
// touched: an out-of-bounds, empty or repeated coordinate fails the
// whole call and leaves the grid unchanged.
func (g *Grid) RemoveTiles(coords []Coord) ([]*Tile, error) {
	seen := make(map[Coord]struct{}, len(coords))
	for _, c := range coords {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("remove %v: %w", c, ErrOutOfBounds)
		}
		if g.cells[g.index(c)] == nil {
			return nil, fmt.Errorf("remove %v: %w", c, ErrCellEmpty)
		}
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("remove %v: %w", c, ErrDuplicateCoord)
		}
		seen[c] = struct{}{}
	}

	removed := make([]*Tile, 0, len(coords))
	for _, c := range coords {
		idx := g.index(c)
		t := g.cells[idx]
		t.State = TileClearing
		g.cells[idx] = nil
		removed = append(removed, t)
	}
	return removed, nil
}

// ResolveGravity compacts every column toward row 0, keeping the
// relative order of the tiles in the column. Moved tiles are marked
// Falling. Calling it again without a removal in between moves nothing.
func (g *Grid) ResolveGravity() []Move {
	var moves []Move
	for x := 0; x < g.W; x++ {
		write := 0
		for y := 0; y < g.H; y++ {
			from := C(x, y)
			t := g.cells[g.index(from)]
			if t == nil {
				continue
			}
			if y != write {
				to := C(x, write)
				g.cells[g.index(to)] = t
				g.cells[g.index(from)] = nil
				t.Pos = to
				t.State = TileFalling
				moves = append(moves, Move{Tile: t, From: from, To: to})
			}
			write++
		}
	}
	return moves
}

// RefillGrid spawns a tile into every empty cell. Cells are visited
// column by column from the left, bottom to top within a column, and the
// spawned tiles are returned in that order.
func (g *Grid) RefillGrid() []*Tile {
	var spawned []*Tile
	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			c := C(x, y)
			if g.cells[g.index(c)] != nil {
				continue
			}
			t, _ := g.SpawnTile(c) // cell checked empty above
			spawned = append(spawned, t)
		}
	}
	return spawned
}

// SettleFalling returns every Falling tile to Idle.
func (g *Grid) SettleFalling() {
	for _, t := range g.cells {
		if t != nil && t.State == TileFalling {
			t.State = TileIdle
		}
	}
}

// IsContiguous reports whether every column's tiles form an unbroken run
// starting at row 0.
func (g *Grid) IsContiguous() bool {
	for x := 0; x < g.W; x++ {
		gap := false
		for y := 0; y < g.H; y++ {
			empty := g.cells[g.index(C(x, y))] == nil
			if empty {
				gap = true
			} else if gap {
				return false
			}
		}
	}
	return true
}

// Full reports whether no cell is empty.
func (g *Grid) Full() bool {
	for _, t := range g.cells {
		if t == nil {
			return false
		}
	}
	return true
}

// Each calls fn for every cell, row 0 first, left to right.
// The tile is nil for empty cells.
func (g *Grid) Each(fn func(c Coord, t *Tile)) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			fn(c, g.cells[g.index(c)])
		}
	}
}

// Neighbours returns the in-bounds 8-neighbours of c.
func (g *Grid) Neighbours(c Coord) []Coord {
	out := make([]Coord, 0, len(neighbours))
	for _, d := range neighbours {
		n := c.Add(d[0], d[1])
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Snapshot returns tile types in row-major order, -1 for empty cells.
func (g *Grid) Snapshot() []int {
	out := make([]int, len(g.cells))
	for i, t := range g.cells {
		if t == nil {
			out[i] = -1
			continue
		}
		out[i] = int(t.Type)
	}
	return out
}

// Clone returns a deep copy of the grid. The copy shares the random
// source, so spawning on it advances the sequence of g as well.
func (g *Grid) Clone() *Grid {
	cells := make([]*Tile, len(g.cells))
	for i, t := range g.cells {
		if t != nil {
			cp := *t
			cells[i] = &cp
		}
	}
	return &Grid{
		W:      g.W,
		H:      g.H,
		types:  g.types,
		cells:  cells,
		rng:    g.rng,
		nextID: g.nextID,
	}
}

// Equal returns true if both grids hold the same tiles in the same cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, t := range g.cells {
		o := other.cells[i]
		if (t == nil) != (o == nil) {
			return false
		}
		if t != nil && *t != *o {
			return false
		}
	}
	return true
}
