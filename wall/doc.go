// Package wall turns the puzzle's instruction list into an immutable Model:
// the ordered wall segments, the origin where they start and the end the
// navigator has to reach.
//
// What:
//
//   - ParseInstructions decodes "R3,L4,..." into Instructions.
//   - New replays them from the origin into alternating horizontal and
//     vertical segments, tracking the bounding box.
//   - Blocked and Clear answer wall-contact queries on whole runs in
//     O(N) for N segments, whatever the run's length.
//
// Limits:
//
//	The summed distance of a wall is capped at MaxExtent (2^60), so every
//	coordinate derived from it, including the cells around it that the
//	traversal and the grid search visit, fits an int64 with room to spare.
//
// Errors:
//
//   - ErrMalformedWall: empty input, a bad token, a non-positive distance,
//     a wall longer than MaxExtent or a non-unit starting heading.
package wall
