// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of wallhug.
package gridgraph

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrCellIndex indicates a requested cell index is out of range.
	ErrCellIndex = errors.New("gridgraph: cell index out of range")
	// ErrNoPath indicates the destination cell was not reached.
	ErrNoPath = errors.New("gridgraph: destination not reached")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("gridgraph: invalid option supplied")
)

// Cell values written by Raster.
const (
	Wall  = 0
	Floor = 1
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value that can be walked on.
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=Floor (wall cells are not walkable), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: Floor,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
// Conn and LandThreshold are set from GridOptions during construction.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	LandThreshold   int
	neighborOffsets [][2]int
}

// Option configures BFS via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor can skip moves by returning false.
	// Called with the row-major indices of the move curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a background context, no depth limit and no filter.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS over the grid, indexed row-major:
//   - Order: cells visited, in visit sequence.
//   - Depth: moves from the start, -1 for cells never reached.
//   - Parent: predecessor in the BFS tree, -1 for the start and unreached cells.
type BFSResult struct {
	Order  []int
	Depth  []int
	Parent []int
}

// PathTo reconstructs the cells from the start to dest, both included.
// Returns ErrCellIndex for an index outside the grid and ErrNoPath if dest
// was not reached.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Depth) {
		return nil, fmt.Errorf("%w: %d", ErrCellIndex, dest)
	}
	if r.Depth[dest] < 0 {
		return nil, fmt.Errorf("%w: cell %d", ErrNoPath, dest)
	}
	path := make([]int, r.Depth[dest]+1)
	for i, cur := len(path)-1, dest; i >= 0; i, cur = i-1, r.Parent[cur] {
		path[i] = cur
	}

	return path, nil
}
