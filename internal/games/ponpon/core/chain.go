package core

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// ExtendResult describes what an Extend call did to the path.
type ExtendResult int

const (
	ExtendIgnored ExtendResult = iota
	ExtendAppended
	ExtendBacktracked
)

// String returns the result name.
func (r ExtendResult) String() string {
	switch r {
	case ExtendAppended:
		return "appended"
	case ExtendBacktracked:
		return "backtracked"
	default:
		return "ignored"
	}
}

// ChainResult is produced when a selection is committed.
type ChainResult struct {
	Cleared   bool
	Coords    []Coord // selection order
	Tiles     []*Tile // removed tiles, only when Cleared
	Length    int
	CentroidX float64
	CentroidY float64
}

// Selector tracks the chain the player is dragging across the grid.
// It is Empty until Begin and Building until Commit or Cancel.
type Selector struct {
	grid     *Grid
	minChain int
	path     []Coord
	members  mapset.Set[Coord]
}

// NewSelector creates a selector over grid that clears chains of at
// least minChain tiles.
func NewSelector(grid *Grid, minChain int) *Selector {
	return &Selector{
		grid:     grid,
		minChain: minChain,
		members:  mapset.New[Coord](),
	}
}

// Building reports whether a selection is in progress.
func (s *Selector) Building() bool {
	return len(s.path) > 0
}

// Len returns the current path length.
func (s *Selector) Len() int {
	return len(s.path)
}

// MinChain returns the shortest path that Commit clears.
func (s *Selector) MinChain() int {
	return s.minChain
}

// Path returns a copy of the selected coordinates in selection order.
func (s *Selector) Path() []Coord {
	out := make([]Coord, len(s.path))
	copy(out, s.path)
	return out
}

// Contains reports whether c is part of the current path.
func (s *Selector) Contains(c Coord) bool {
	return s.members.Has(c)
}

// Last returns the most recently selected coordinate.
func (s *Selector) Last() (Coord, bool) {
	if len(s.path) == 0 {
		return Coord{}, false
	}
	return s.path[len(s.path)-1], true
}

// Begin starts a new path at c. The tile there must be Idle.
func (s *Selector) Begin(c Coord) error {
	if s.Building() {
		return ErrSelectionActive
	}
	if !s.grid.InBounds(c) {
		return fmt.Errorf("begin %v: %w", c, ErrOutOfBounds)
	}
	t := s.grid.At(c)
	if t == nil {
		return fmt.Errorf("begin %v: %w", c, ErrCellEmpty)
	}
	if t.State != TileIdle {
		return fmt.Errorf("begin %v: %w", c, ErrTileNotIdle)
	}
	s.push(c, t)
	return nil
}

// Extend offers c as the next step of the path.
//
// Retracing onto the second-to-last tile drops the last one. Otherwise an
// Idle, unselected, same-type neighbour of the last tile is appended.
// Anything else is ignored and the path is left as it was.
func (s *Selector) Extend(c Coord) (ExtendResult, error) {
	if !s.Building() {
		return ExtendIgnored, ErrNoSelection
	}
	n := len(s.path)
	if n >= 2 && s.path[n-2] == c {
		s.pop()
		return ExtendBacktracked, nil
	}

	t := s.grid.At(c)
	if t == nil || t.State != TileIdle || s.members.Has(c) {
		return ExtendIgnored, nil
	}
	last := s.path[n-1]
	if !IsAdjacent(last, c) || !IsSameType(s.grid.At(last), t) {
		return ExtendIgnored, nil
	}
	s.push(c, t)
	return ExtendAppended, nil
}

// Commit ends the selection. Paths of at least MinChain tiles are removed
// from the grid; shorter ones are deselected. The selector is Empty
// afterwards in both cases.
func (s *Selector) Commit() (ChainResult, error) {
	if !s.Building() {
		return ChainResult{}, ErrNoSelection
	}
	res := ChainResult{
		Coords: s.Path(),
		Length: len(s.path),
	}
	for _, c := range s.path {
		res.CentroidX += float64(c.X)
		res.CentroidY += float64(c.Y)
	}
	res.CentroidX /= float64(res.Length)
	res.CentroidY /= float64(res.Length)

	if res.Length < s.minChain {
		s.Cancel()
		return res, nil
	}

	tiles, err := s.grid.RemoveTiles(res.Coords)
	if err != nil {
		s.Cancel()
		return ChainResult{}, fmt.Errorf("commit chain: %w", err)
	}
	s.path = s.path[:0]
	s.members.Clear()
	res.Cleared = true
	res.Tiles = tiles
	return res, nil
}

// Cancel deselects every tile on the path and returns to Empty.
func (s *Selector) Cancel() {
	for _, c := range s.path {
		if t := s.grid.At(c); t != nil && t.State == TileSelected {
			t.State = TileIdle
		}
	}
	s.path = s.path[:0]
	s.members.Clear()
}

func (s *Selector) push(c Coord, t *Tile) {
	t.State = TileSelected
	s.path = append(s.path, c)
	s.members.Put(c)
}

func (s *Selector) pop() {
	n := len(s.path)
	c := s.path[n-1]
	if t := s.grid.At(c); t != nil {
		t.State = TileIdle
	}
	s.path = s.path[:n-1]
	s.members.Remove(c)
}
