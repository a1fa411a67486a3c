package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/ponpon/internal/games/ponpon/core"
)

func newFilledGrid(t *testing.T, w, h, types int, seed int64) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(w, h, types, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	g.InitializeGrid()
	return g
}

func TestNewGridRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		types   int
		wantErr error
	}{
		{"zero width", 0, 9, 5, core.ErrInvalidDimensions},
		{"zero height", 7, 0, 5, core.ErrInvalidDimensions},
		{"negative width", -1, 9, 5, core.ErrInvalidDimensions},
		{"no types", 7, 9, 0, core.ErrInvalidTileTypes},
		{"too many types", 7, 9, core.MaxTileTypes + 1, core.ErrInvalidTileTypes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := core.NewGrid(tt.w, tt.h, tt.types, nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestInitializeGridFillsEveryCell(t *testing.T) {
	g := newFilledGrid(t, 7, 9, 5, 42)

	assert.True(t, g.Full())
	ids := map[uint64]bool{}
	g.Each(func(c core.Coord, tile *core.Tile) {
		require.NotNil(t, tile)
		assert.Equal(t, c, tile.Pos)
		assert.Equal(t, core.TileIdle, tile.State)
		assert.Less(t, int(tile.Type), 5)
		assert.False(t, ids[tile.ID], "duplicate tile id %d", tile.ID)
		ids[tile.ID] = true
	})
	assert.Len(t, ids, 63)
}

func TestInitializeGridIsSeeded(t *testing.T) {
	a := newFilledGrid(t, 7, 9, 5, 7)
	b := newFilledGrid(t, 7, 9, 5, 7)
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestSpawnTileRequiresEmptyCell(t *testing.T) {
	g := newFilledGrid(t, 3, 3, 2, 1)

	_, err := g.SpawnTile(core.C(1, 1))
	assert.ErrorIs(t, err, core.ErrCellOccupied)

	_, err = g.SpawnTile(core.C(3, 0))
	assert.ErrorIs(t, err, core.ErrOutOfBounds)

	_, err = g.RemoveTiles([]core.Coord{core.C(1, 1)})
	require.NoError(t, err)
	tile, err := g.SpawnTile(core.C(1, 1))
	require.NoError(t, err)
	assert.Equal(t, core.C(1, 1), tile.Pos)
	assert.Same(t, tile, g.At(core.C(1, 1)))
}

func TestIsAdjacentSymmetric(t *testing.T) {
	var coords []core.Coord
	for y := 0; y < 9; y++ {
		for x := 0; x < 7; x++ {
			coords = append(coords, core.C(x, y))
		}
	}
	for _, a := range coords {
		assert.False(t, core.IsAdjacent(a, a), "%v adjacent to itself", a)
		for _, b := range coords {
			assert.Equal(t, core.IsAdjacent(a, b), core.IsAdjacent(b, a), "%v vs %v", a, b)
			assert.Equal(t, a.Chebyshev(b) == 1, core.IsAdjacent(a, b), "%v vs %v", a, b)
		}
	}
}

func TestIsAdjacentCases(t *testing.T) {
	tests := []struct {
		a, b     core.Coord
		expected bool
	}{
		{core.C(2, 2), core.C(3, 2), true},
		{core.C(2, 2), core.C(3, 3), true},
		{core.C(2, 2), core.C(1, 3), true},
		{core.C(2, 2), core.C(2, 1), true},
		{core.C(2, 2), core.C(4, 2), false},
		{core.C(2, 2), core.C(4, 4), false},
		{core.C(0, 0), core.C(0, 0), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, core.IsAdjacent(tt.a, tt.b), "IsAdjacent(%v, %v)", tt.a, tt.b)
	}
}

func TestIsSameType(t *testing.T) {
	a := &core.Tile{Type: 1}
	b := &core.Tile{Type: 1}
	c := &core.Tile{Type: 2}

	assert.True(t, core.IsSameType(a, b))
	assert.True(t, core.IsSameType(b, a))
	assert.False(t, core.IsSameType(a, c))
	assert.False(t, core.IsSameType(a, nil))
	assert.False(t, core.IsSameType(nil, nil))
}

func TestRemoveTilesFailsFast(t *testing.T) {
	tests := []struct {
		name    string
		coords  []core.Coord
		wantErr error
	}{
		{"out of bounds", []core.Coord{core.C(0, 0), core.C(9, 9)}, core.ErrOutOfBounds},
		{"duplicate", []core.Coord{core.C(0, 0), core.C(0, 0)}, core.ErrDuplicateCoord},
		{"already empty", []core.Coord{core.C(1, 0), core.C(0, 1)}, core.ErrCellEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := core.GridFromSnapshot(2, 2, 2, []int{0, -1, 1, 1}, nil)
			require.NoError(t, err)
			before := g.Clone()

			_, err = g.RemoveTiles(tt.coords)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, g.Equal(before), "grid changed after failed removal")
		})
	}
}

func TestRemoveTilesMarksClearing(t *testing.T) {
	g := newFilledGrid(t, 3, 3, 2, 3)
	want := g.At(core.C(1, 1))

	removed, err := g.RemoveTiles([]core.Coord{core.C(1, 1), core.C(2, 2)})
	require.NoError(t, err)
	require.Len(t, removed, 2)
	assert.Same(t, want, removed[0])
	assert.Equal(t, core.TileClearing, removed[0].State)
	assert.Nil(t, g.At(core.C(1, 1)))
	assert.Nil(t, g.At(core.C(2, 2)))
}

func TestResolveGravityIsStable(t *testing.T) {
	// One column, bottom to top: A, _, B, _, C
	g, err := core.GridFromSnapshot(1, 5, 3, []int{0, -1, 1, -1, 2}, nil)
	require.NoError(t, err)
	b := g.At(core.C(0, 2))
	c := g.At(core.C(0, 4))

	moves := g.ResolveGravity()

	assert.Equal(t, []int{0, 1, 2, -1, -1}, g.Snapshot())
	require.Len(t, moves, 2)
	assert.Equal(t, core.Move{Tile: b, From: core.C(0, 2), To: core.C(0, 1)}, moves[0])
	assert.Equal(t, core.Move{Tile: c, From: core.C(0, 4), To: core.C(0, 2)}, moves[1])
	assert.Equal(t, core.C(0, 1), b.Pos)
	assert.Equal(t, core.TileFalling, b.State)
	assert.Equal(t, core.TileIdle, g.At(core.C(0, 0)).State)
	assert.True(t, g.IsContiguous())
}

func TestResolveGravityIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 25; i++ {
		g := newFilledGrid(t, 7, 9, 5, int64(i))
		var coords []core.Coord
		g.Each(func(c core.Coord, _ *core.Tile) {
			if rng.Intn(3) == 0 {
				coords = append(coords, c)
			}
		})
		_, err := g.RemoveTiles(coords)
		require.NoError(t, err)

		g.ResolveGravity()
		once := g.Clone()
		moves := g.ResolveGravity()

		assert.Empty(t, moves)
		assert.True(t, g.Equal(once), "second gravity pass changed the grid")
	}
}

func TestRefillGridOrder(t *testing.T) {
	g, err := core.GridFromSnapshot(2, 3, 4, []int{
		1, -1,
		-1, -1,
		-1, -1,
	}, nil)
	require.NoError(t, err)

	spawned := g.RefillGrid()

	var got []core.Coord
	for _, tile := range spawned {
		got = append(got, tile.Pos)
	}
	assert.Equal(t, []core.Coord{
		core.C(0, 1), core.C(0, 2),
		core.C(1, 0), core.C(1, 1), core.C(1, 2),
	}, got)
	assert.True(t, g.Full())
}

func TestSettleKeepsColumnsContiguous(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	g := newFilledGrid(t, 7, 9, 5, 5)

	for i := 0; i < 50; i++ {
		var coords []core.Coord
		g.Each(func(c core.Coord, _ *core.Tile) {
			if rng.Intn(4) == 0 {
				coords = append(coords, c)
			}
		})
		_, err := g.RemoveTiles(coords)
		require.NoError(t, err)

		g.ResolveGravity()
		require.True(t, g.IsContiguous(), "gap after gravity on pass %d", i)

		g.RefillGrid()
		g.SettleFalling()
		require.True(t, g.Full())
		g.Each(func(c core.Coord, tile *core.Tile) {
			assert.Equal(t, c, tile.Pos)
			assert.Equal(t, core.TileIdle, tile.State)
		})
	}
}

func TestGridFromSnapshotRejectsBadInput(t *testing.T) {
	_, err := core.GridFromSnapshot(2, 2, 2, []int{0, 1, 0}, nil)
	assert.ErrorIs(t, err, core.ErrInvalidDimensions)

	_, err = core.GridFromSnapshot(2, 2, 2, []int{0, 1, 0, 2}, nil)
	assert.ErrorIs(t, err, core.ErrInvalidTileTypes)
}
