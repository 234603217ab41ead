// Package hug walks one side of a wall, a whole segment at a time, and emits
// a coarse rectilinear path from the origin's neighbourhood to the end.
//
// The walk never materialises a grid: each loop iteration consumes one wall
// segment (or finishes via the bee-line shortcut), so the cost is
// proportional to the number of instructions, not to the wall's length.
//
// Per hugged segment, with `toward` the rotation that faces the wall:
//
//	target = seg.End + heading − toward(heading)   cell diagonally past the corner
//	hit    = target − heading                      cell beside the corner
//
//	concave corner (next segment contains hit):  stop at hit−heading, turn away
//	convex corner:                               go to target, turn toward, step once
//
// Before either, the run the walker is about to take is scanned for the end's
// row or column; if a straight line from there reaches the end touching the
// wall only at the end, the walk finishes with those two moves.
//
// A wall that closes on its own origin needs no walk at all: the path is
// empty and anchored at the origin, for a length of zero.
package hug
