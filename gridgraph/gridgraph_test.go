package gridgraph_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wallhug/geom"
	"github.com/katalvlaran/wallhug/gridgraph"
	"github.com/katalvlaran/wallhug/wall"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, gridgraph.DefaultGridOptions())
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNewGridGraph_CopiesInput(t *testing.T) {
	grid := [][]int{{1, 1}, {1, 0}}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	grid[1][1] = 1
	assert.False(t, gg.IsLand(1, 1))
	assert.True(t, gg.IsLand(0, 1))
}

// TestInBounds checks InBounds and IsLand on a 3×2 grid.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{
		{0, 1, 0},
		{1, 0, 1},
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, gg.InBounds(xy[0], xy[1]), "%v", xy)
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, gg.InBounds(xy[0], xy[1]), "%v", xy)
		assert.False(t, gg.IsLand(xy[0], xy[1]), "%v", xy)
	}
	assert.True(t, gg.IsLand(1, 0))
	assert.False(t, gg.IsLand(0, 0))
}

func TestIndexCoordinate(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(make4x3(), gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	assert.Equal(t, 12, gg.Len())
	for idx := 0; idx < gg.Len(); idx++ {
		x, y := gg.Coordinate(idx)
		assert.Equal(t, idx, gg.Index(x, y))
	}
	assert.Equal(t, 7, gg.Index(3, 1))
}

func TestNeighborOffsets(t *testing.T) {
	gg4, err := gridgraph.NewGridGraph(make4x3(), gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	assert.Len(t, gg4.NeighborOffsets(), 4)

	gg8, err := gridgraph.NewGridGraph(make4x3(), gridgraph.GridOptions{LandThreshold: 1, Conn: gridgraph.Conn8})
	require.NoError(t, err)
	assert.Len(t, gg8.NeighborOffsets(), 8)
}

func make4x3() [][]int {
	return [][]int{
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
	}
}

//----------------------------------------------------------------------------//
// Raster
//----------------------------------------------------------------------------//

func TestRaster_Box(t *testing.T) {
	// box wall from (0,0): right 3, down 2, left 3, up 1 → end (0,1)
	m := wall.MustNew(geom.Up, wall.MustParse("R3,R2,R3,R1"))
	box := m.Bounds().Grow(1)
	values := gridgraph.Raster(m, box, m.End())

	want := [][]int{
		{1, 1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 0, 1},
		{1, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1, 1},
	}
	assert.Equal(t, want, values)
}

func TestRaster_OpenOutsideBoxIgnored(t *testing.T) {
	m := wall.MustNew(geom.Up, wall.MustParse("R2"))
	values := gridgraph.Raster(m, m.Bounds(), geom.V(9, 9), m.Origin())
	assert.Equal(t, [][]int{{1, 0, 0}}, values)
}

//----------------------------------------------------------------------------//
// BFS
//----------------------------------------------------------------------------//

// corridor is a 5×3 grid with a wall down the middle column except its
// bottom cell:
//
//	. . # . .
//	. . # . .
//	. . . . .
func corridor(t *testing.T) *gridgraph.GridGraph {
	t.Helper()
	gg, err := gridgraph.NewGridGraph([][]int{
		{1, 1, 0, 1, 1},
		{1, 1, 0, 1, 1},
		{1, 1, 1, 1, 1},
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	return gg
}

func TestBFS_Distances(t *testing.T) {
	gg := corridor(t)
	res, err := gg.BFS(gg.Index(0, 0))
	require.NoError(t, err)

	assert.Equal(t, 0, res.Depth[gg.Index(0, 0)])
	assert.Equal(t, 3, res.Depth[gg.Index(1, 2)])
	assert.Equal(t, 4, res.Depth[gg.Index(2, 2)])
	assert.Equal(t, 7, res.Depth[gg.Index(3, 0)])
	assert.Equal(t, 8, res.Depth[gg.Index(4, 0)])
	assert.Equal(t, -1, res.Depth[gg.Index(2, 0)], "wall cell")
	assert.Len(t, res.Order, 13)
	assert.Equal(t, gg.Index(0, 0), res.Order[0])

	path, err := res.PathTo(gg.Index(4, 0))
	require.NoError(t, err)
	require.Len(t, path, 9)
	assert.Equal(t, gg.Index(0, 0), path[0])
	assert.Equal(t, gg.Index(2, 2), path[4])
	assert.Equal(t, gg.Index(4, 0), path[8])
}

func TestBFS_StartOnWall(t *testing.T) {
	gg := corridor(t)
	res, err := gg.BFS(gg.Index(2, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Depth[gg.Index(1, 0)])
	assert.Equal(t, 1, res.Depth[gg.Index(3, 0)])
}

func TestBFS_Options(t *testing.T) {
	gg := corridor(t)

	res, err := gg.BFS(gg.Index(0, 0), gridgraph.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Depth[gg.Index(1, 1)])
	assert.Equal(t, -1, res.Depth[gg.Index(1, 2)])
	_, err = res.PathTo(gg.Index(1, 2))
	assert.ErrorIs(t, err, gridgraph.ErrNoPath)

	// Forbid the bottom row: the right half becomes unreachable.
	bottom := func(_, v int) bool {
		_, y := gg.Coordinate(v)
		return y < 2
	}
	res, err = gg.BFS(gg.Index(0, 0), gridgraph.WithFilterNeighbor(bottom))
	require.NoError(t, err)
	assert.Equal(t, -1, res.Depth[gg.Index(4, 0)])
	assert.Len(t, res.Order, 4)
}

func TestBFS_Errors(t *testing.T) {
	gg := corridor(t)

	_, err := gg.BFS(-1)
	assert.ErrorIs(t, err, gridgraph.ErrCellIndex)
	_, err = gg.BFS(gg.Len())
	assert.ErrorIs(t, err, gridgraph.ErrCellIndex)

	_, err = gg.BFS(0, gridgraph.WithMaxDepth(-1))
	assert.ErrorIs(t, err, gridgraph.ErrOptionViolation)

	res, err := gg.BFS(0)
	require.NoError(t, err)
	_, err = res.PathTo(gg.Len())
	assert.ErrorIs(t, err, gridgraph.ErrCellIndex)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = gg.BFS(0, gridgraph.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
