package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/ponpon/internal/games/ponpon/core"
)

// chainBoard is a 3×3 board, bottom row first:
//
//	y=2: 1 1 1
//	y=1: 0 0 1
//	y=0: 0 1 0
func chainBoard(t *testing.T) *core.Grid {
	t.Helper()
	g, err := core.GridFromSnapshot(3, 3, 2, []int{
		0, 1, 0,
		0, 0, 1,
		1, 1, 1,
	}, nil)
	require.NoError(t, err)
	return g
}

var (
	tileA = core.C(0, 0)
	tileB = core.C(0, 1)
	tileC = core.C(1, 1)
	tileD = core.C(2, 0)
)

func selectPath(t *testing.T, s *core.Selector, coords ...core.Coord) {
	t.Helper()
	require.NoError(t, s.Begin(coords[0]))
	for _, c := range coords[1:] {
		res, err := s.Extend(c)
		require.NoError(t, err)
		require.Equal(t, core.ExtendAppended, res, "extend %v", c)
	}
}

func TestSelectorBegin(t *testing.T) {
	g := chainBoard(t)
	s := core.NewSelector(g, 3)

	require.NoError(t, s.Begin(tileA))
	assert.True(t, s.Building())
	assert.Equal(t, []core.Coord{tileA}, s.Path())
	assert.Equal(t, core.TileSelected, g.At(tileA).State)

	assert.ErrorIs(t, s.Begin(tileB), core.ErrSelectionActive)
}

func TestSelectorBeginRejectsBadTiles(t *testing.T) {
	g, err := core.GridFromSnapshot(2, 1, 1, []int{0, -1}, nil)
	require.NoError(t, err)
	s := core.NewSelector(g, 3)

	assert.ErrorIs(t, s.Begin(core.C(1, 0)), core.ErrCellEmpty)
	assert.ErrorIs(t, s.Begin(core.C(5, 0)), core.ErrOutOfBounds)

	g.At(core.C(0, 0)).State = core.TileFalling
	assert.ErrorIs(t, s.Begin(core.C(0, 0)), core.ErrTileNotIdle)
	assert.False(t, s.Building())
}

func TestSelectorExtendRequiresSelection(t *testing.T) {
	s := core.NewSelector(chainBoard(t), 3)

	res, err := s.Extend(tileA)
	assert.ErrorIs(t, err, core.ErrNoSelection)
	assert.Equal(t, core.ExtendIgnored, res)
}

func TestSelectorExtendIgnoresInvalidSteps(t *testing.T) {
	tests := []struct {
		name  string
		path  []core.Coord
		offer core.Coord
	}{
		{"not adjacent", []core.Coord{tileA}, tileD},
		{"different type", []core.Coord{tileA}, core.C(1, 0)},
		{"already selected", []core.Coord{tileA, tileB, tileC}, tileA},
		{"last tile again", []core.Coord{tileA, tileB}, tileB},
		{"out of bounds", []core.Coord{tileA}, core.C(-1, 0)},
		{"self at length one", []core.Coord{tileA}, tileA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := chainBoard(t)
			s := core.NewSelector(g, 3)
			selectPath(t, s, tt.path...)

			res, err := s.Extend(tt.offer)
			require.NoError(t, err)
			assert.Equal(t, core.ExtendIgnored, res)
			assert.Equal(t, tt.path, s.Path())
		})
	}
}

func TestSelectorExtendSkipsNonIdleTiles(t *testing.T) {
	g := chainBoard(t)
	s := core.NewSelector(g, 3)
	require.NoError(t, s.Begin(tileA))

	g.At(tileB).State = core.TileFalling
	res, err := s.Extend(tileB)
	require.NoError(t, err)
	assert.Equal(t, core.ExtendIgnored, res)
}

func TestSelectorBacktrack(t *testing.T) {
	g := chainBoard(t)
	s := core.NewSelector(g, 3)
	selectPath(t, s, tileA, tileB, tileC)

	res, err := s.Extend(tileB)
	require.NoError(t, err)

	assert.Equal(t, core.ExtendBacktracked, res)
	assert.Equal(t, []core.Coord{tileA, tileB}, s.Path())
	assert.Equal(t, core.TileIdle, g.At(tileC).State)
	assert.Equal(t, core.TileSelected, g.At(tileB).State)
	assert.False(t, s.Contains(tileC))

	// The dropped tile can be picked up again.
	res, err = s.Extend(tileC)
	require.NoError(t, err)
	assert.Equal(t, core.ExtendAppended, res)
	assert.Equal(t, []core.Coord{tileA, tileB, tileC}, s.Path())
}

func TestSelectorCommitBelowMinimum(t *testing.T) {
	g := chainBoard(t)
	before := g.Snapshot()
	s := core.NewSelector(g, 3)
	selectPath(t, s, tileA, tileB)

	res, err := s.Commit()
	require.NoError(t, err)

	assert.False(t, res.Cleared)
	assert.Equal(t, 2, res.Length)
	assert.Empty(t, res.Tiles)
	assert.False(t, s.Building())
	assert.Equal(t, before, g.Snapshot())
	assert.Equal(t, core.TileIdle, g.At(tileA).State)
	assert.Equal(t, core.TileIdle, g.At(tileB).State)
}

func TestSelectorCommitClears(t *testing.T) {
	g := chainBoard(t)
	s := core.NewSelector(g, 3)
	selectPath(t, s, tileA, tileB, tileC, tileD)

	res, err := s.Commit()
	require.NoError(t, err)

	assert.True(t, res.Cleared)
	assert.Equal(t, 4, res.Length)
	assert.Equal(t, []core.Coord{tileA, tileB, tileC, tileD}, res.Coords)
	require.Len(t, res.Tiles, 4)
	for _, tile := range res.Tiles {
		assert.Equal(t, core.TileClearing, tile.State)
	}
	assert.InDelta(t, 0.75, res.CentroidX, 1e-9)
	assert.InDelta(t, 0.5, res.CentroidY, 1e-9)
	for _, c := range res.Coords {
		assert.Nil(t, g.At(c))
	}
	assert.False(t, s.Building())
}

func TestSelectorCommitRequiresSelection(t *testing.T) {
	s := core.NewSelector(chainBoard(t), 3)
	_, err := s.Commit()
	assert.ErrorIs(t, err, core.ErrNoSelection)
}

func TestSelectorCommitThreshold(t *testing.T) {
	for _, minChain := range []int{2, 3, 4, 5, 7} {
		for _, length := range []int{minChain - 1, minChain} {
			g := newFilledGrid(t, 7, 9, 1, 1)
			s := core.NewSelector(g, minChain)
			path := make([]core.Coord, length)
			for i := range path {
				path[i] = core.C(i, 0)
			}
			selectPath(t, s, path...)

			res, err := s.Commit()
			require.NoError(t, err)
			assert.Equal(t, length >= minChain, res.Cleared, "min %d, length %d", minChain, length)
		}
	}
}

func TestSelectorCancel(t *testing.T) {
	g := chainBoard(t)
	s := core.NewSelector(g, 3)
	selectPath(t, s, tileA, tileB, tileC)

	s.Cancel()

	assert.False(t, s.Building())
	assert.Empty(t, s.Path())
	for _, c := range []core.Coord{tileA, tileB, tileC} {
		assert.Equal(t, core.TileIdle, g.At(c).State)
	}
	s.Cancel()
}
