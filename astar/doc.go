// Package astar computes the true shortest 4-connected route from a start
// cell to the wall's end, used as a ground truth for the hugging navigator.
//
// The grid is explicit but bounded: Search rasterises the wall with
// gridgraph.Raster over Box, the bounding box of the wall and the start grown
// by one cell so the route can pass around the outside. Cost and memory are
// proportional to the box area, which is why MaxCells exists; the navigator
// itself never pays it.
//
// Complexity:
//
//   - Time:  O(A log A) for A = box area.
//   - Space: O(A).
//
// Notes on implementation choices:
//
//   - Unit edge weights with the Manhattan heuristic, which is consistent,
//     so a cell is final the first time it is popped.
//   - Lazy decrease-key: stale heap entries are skipped when popped.
//   - Ties on f prefer the deeper entry, which reaches the goal sooner on
//     open ground.
//   - gridgraph.GridGraph.BFS answers the same question without the
//     heuristic; the tests hold the two against each other.
package astar
