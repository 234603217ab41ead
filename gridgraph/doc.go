// Package gridgraph treats a bounded window of the plane as a grid of cells,
// for the searches that are allowed to materialise a wall.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold;
//     cells at or above it can be walked on.
//   - Raster draws a wall.Model into such a grid over a geom.Rect window,
//     with chosen points (search start, wall end) forced open.
//   - BFS computes unit-cost shortest distances and a parent tree over the
//     land cells, with context cancellation, a depth limit and a neighbor
//     filter.
//
// Why:
//
//   - astar builds its search grid here, and BFS is an independent exact
//     answer to check it against.
//
// Complexity:
//
//   - Raster:       O(A + L), Memory: O(A)   (A = window area, L = wall length).
//   - NewGridGraph: O(A), Memory: O(A).
//   - BFS:          O(A×d), Memory: O(A)     (d = number of neighbors, 4 or 8).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered walkable.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCellIndex: a cell index is outside the grid.
//   - ErrNoPath: PathTo asked for a cell BFS never reached.
//   - ErrOptionViolation: a BFS option is invalid.
package gridgraph
