// Package geom provides the integer primitives every other wallhug package
// reasons with: 2D vectors, closed axis-aligned segments and bounding boxes.
//
// What:
//
//   - Vec2 is an immutable integer displacement/position with 90° rotations
//     and Manhattan magnitude.
//   - Segment is a closed, strictly horizontal or strictly vertical interval
//     between two points. Construction rejects anything else.
//   - Rect is an inclusive bounding box used to size grid searches.
//
// Orientation:
//
//	The y axis grows downward (screen orientation), so RotateRight(Up) == Right
//	and RotateLeft(Up) == Left.
//
//	      Up (0,-1)
//	          │
//	Left ─────┼───── Right (1,0)
//	          │
//	      Down (0,1)
//
// Errors:
//
//   - ErrInvariantViolation: a segment or direction is not axis-aligned.
//     It always signals a logic defect in the caller, never bad user input,
//     and other packages wrap it for their own geometry failures.
//
// Complexity: every operation is O(1) except Segment.Points, which yields
// Len()+1 points.
package geom
