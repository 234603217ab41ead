package gridgraph

import (
	"github.com/katalvlaran/wallhug/geom"
	"github.com/katalvlaran/wallhug/wall"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
	}

	return gg, nil
}

// Raster draws m into a grid covering box: every wall cell is Wall, the rest
// Floor, and each point of open that lies in box is forced back to Floor.
// Row y of the result is box.Min.Y+y, column x is box.Min.X+x. The caller
// bounds box.Area(); Raster allocates it.
// Complexity: O(A + L) for box area A and total wall length L.
func Raster(m *wall.Model, box geom.Rect, open ...geom.Vec2) [][]int {
	w, h := int(box.Width()), int(box.Height())
	values := make([][]int, h)
	for y := range values {
		values[y] = make([]int, w)
		for x := range values[y] {
			values[y][x] = Floor
		}
	}
	for i := 0; i < m.Len(); i++ {
		for p := range m.Segment(i).Points() {
			if box.Contains(p) {
				values[p.Y-box.Min.Y][p.X-box.Min.X] = Wall
			}
		}
	}
	for _, p := range open {
		if box.Contains(p) {
			values[p.Y-box.Min.Y][p.X-box.Min.X] = Floor
		}
	}

	return values
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether (x,y) is in bounds and at least LandThreshold.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Len returns the number of cells, Width×Height.
func (gg *GridGraph) Len() int {
	return gg.Width * gg.Height
}
