package geom

import (
	"errors"
	"fmt"
)

// ErrInvariantViolation indicates a geometric invariant was broken: a segment
// that is neither purely horizontal nor purely vertical, a direction that is
// not axis-aligned, or (wrapped by other packages) a path that crosses a wall.
var ErrInvariantViolation = errors.New("geom: geometry invariant violated")

// Vec2 is an integer 2D displacement or position.
type Vec2 struct {
	X, Y int64
}

// Unit directions in screen orientation (y grows downward).
var (
	Up    = Vec2{0, -1}
	Down  = Vec2{0, 1}
	Left  = Vec2{-1, 0}
	Right = Vec2{1, 0}
)

// V is shorthand for Vec2{x, y}.
func V(x, y int64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v − o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns v scaled by k.
func (v Vec2) Mul(k int64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Neg returns −v.
func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

// RotateRight turns v 90° clockwise on screen: (x, y) → (−y, x).
func (v Vec2) RotateRight() Vec2 { return Vec2{-v.Y, v.X} }

// RotateLeft turns v 90° counter-clockwise on screen: (x, y) → (y, −x).
func (v Vec2) RotateLeft() Vec2 { return Vec2{v.Y, -v.X} }

// Mag returns the Manhattan magnitude |x| + |y|.
func (v Vec2) Mag() int64 { return abs(v.X) + abs(v.Y) }

// Dist returns the Manhattan distance between v and o.
func (v Vec2) Dist(o Vec2) int64 { return v.Sub(o).Mag() }

// IsZero reports whether v is the zero vector.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// IsHorizontal reports whether v has a nonzero x and a zero y.
func (v Vec2) IsHorizontal() bool { return v.X != 0 && v.Y == 0 }

// IsVertical reports whether v has a zero x and a nonzero y.
func (v Vec2) IsVertical() bool { return v.X == 0 && v.Y != 0 }

// SameAxis reports whether v and o are both horizontal or both vertical.
// The zero vector shares an axis with nothing.
func (v Vec2) SameAxis(o Vec2) bool {
	return (v.IsHorizontal() && o.IsHorizontal()) || (v.IsVertical() && o.IsVertical())
}

// Unit returns the unit step along v's axis, preserving its sign.
// It panics with ErrInvariantViolation when v is zero or diagonal.
func (v Vec2) Unit() Vec2 {
	switch {
	case v.IsHorizontal():
		return Vec2{sign(v.X), 0}
	case v.IsVertical():
		return Vec2{0, sign(v.Y)}
	default:
		panic(fmt.Errorf("%w: %v has no axis direction", ErrInvariantViolation, v))
	}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) int64 { return v.X*o.X + v.Y*o.Y }

// String renders v as "(x,y)".
func (v Vec2) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int64) int64 {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
