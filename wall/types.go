// Package wall defines the instruction stream a wall is described by and the
// immutable Model replayed from it.
package wall

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/wallhug/geom"
)

// ErrMalformedWall indicates the instructions do not describe a usable
// rectilinear wall: no instructions, a non-positive distance, an unknown turn,
// a total distance above MaxExtent, or an initial heading that is not a unit
// axis vector.
var ErrMalformedWall = errors.New("wall: malformed wall specification")

// MaxExtent caps the summed instruction distance of a wall. Every coordinate
// the wall, the traversal and the grid search derive stays far inside int64.
const MaxExtent int64 = 1 << 60

// Turn is the rotation applied to the heading before a wall run.
type Turn byte

const (
	// TurnLeft rotates the heading 90° counter-clockwise on screen.
	TurnLeft Turn = 'L'
	// TurnRight rotates the heading 90° clockwise on screen.
	TurnRight Turn = 'R'
)

// String returns "L" or "R", or "?" for an invalid turn.
func (t Turn) String() string {
	switch t {
	case TurnLeft, TurnRight:
		return string(rune(t))
	}
	return "?"
}

// Instruction turns, then lays Distance wall cells in the new heading.
type Instruction struct {
	Turn     Turn
	Distance int64
}

// String renders the instruction in its puzzle form, e.g. "R12".
func (in Instruction) String() string {
	return in.Turn.String() + strconv.FormatInt(in.Distance, 10)
}

// Model is an ordered, immutable sequence of connected wall segments.
// Segment i ends where segment i+1 starts and consecutive segments alternate
// between horizontal and vertical. The wall starts at Origin and its final
// point End is the navigation target.
type Model struct {
	origin   geom.Vec2
	end      geom.Vec2
	segments []geom.Segment
	bounds   geom.Rect
}
