package geom

import (
	"fmt"
	"iter"
)

// Segment is the closed interval of grid points between Start and End.
// A Segment built by NewSegment is strictly horizontal or strictly vertical.
type Segment struct {
	Start, End Vec2
}

// NewSegment builds the segment start→end.
// It returns ErrInvariantViolation unless exactly one of start.X == end.X,
// start.Y == end.Y holds, i.e. diagonal and zero-length segments are rejected.
func NewSegment(start, end Vec2) (Segment, error) {
	if (start.X == end.X) == (start.Y == end.Y) {
		return Segment{}, fmt.Errorf("%w: segment %v--%v is not axis-aligned", ErrInvariantViolation, start, end)
	}
	return Segment{Start: start, End: end}, nil
}

// MustSegment is NewSegment for callers that already hold the invariant.
// It panics on violation.
func MustSegment(start, end Vec2) Segment {
	s, err := NewSegment(start, end)
	if err != nil {
		panic(err)
	}
	return s
}

// SegmentDelta builds the segment start→start+delta.
func SegmentDelta(start, delta Vec2) (Segment, error) {
	return NewSegment(start, start.Add(delta))
}

// Run builds the straight run a→b, which may be the single point a == b.
// Runs feed the same intersection queries as segments; they exist because a
// cursor that has not moved yet still has to be tested against the wall.
// Run panics with ErrInvariantViolation if a and b share neither row nor column.
func Run(a, b Vec2) Segment {
	if a.X != b.X && a.Y != b.Y {
		panic(fmt.Errorf("%w: run %v--%v is diagonal", ErrInvariantViolation, a, b))
	}
	return Segment{Start: a, End: b}
}

// IsHorizontal reports whether s spans a nonzero x range on a single row.
func (s Segment) IsHorizontal() bool { return s.Start.Y == s.End.Y && s.Start.X != s.End.X }

// IsVertical reports whether s spans a nonzero y range on a single column.
func (s Segment) IsVertical() bool { return s.Start.X == s.End.X && s.Start.Y != s.End.Y }

// Delta returns End − Start.
func (s Segment) Delta() Vec2 { return s.End.Sub(s.Start) }

// Direction returns the unit step from Start toward End.
func (s Segment) Direction() Vec2 { return s.Delta().Unit() }

// Len returns the number of unit steps between Start and End.
func (s Segment) Len() int64 { return s.Delta().Mag() }

// onRow treats a single point as a row so runs share the horizontal math.
func (s Segment) onRow() bool { return s.Start.Y == s.End.Y }

func (s Segment) xRange() (int64, int64) { return minmax(s.Start.X, s.End.X) }

func (s Segment) yRange() (int64, int64) { return minmax(s.Start.Y, s.End.Y) }

// Contains reports whether p lies on s, endpoints included.
func (s Segment) Contains(p Vec2) bool {
	x0, x1 := s.xRange()
	y0, y1 := s.yRange()
	return p.X >= x0 && p.X <= x1 && p.Y >= y0 && p.Y <= y1
}

// Overlap returns the closed interval lo..hi shared by s and o.
// Crossing segments share a single point (lo == hi); collinear segments share
// a sub-interval ordered by increasing coordinate.
func (s Segment) Overlap(o Segment) (lo, hi Vec2, ok bool) {
	sx0, sx1 := s.xRange()
	sy0, sy1 := s.yRange()
	ox0, ox1 := o.xRange()
	oy0, oy1 := o.yRange()

	ix0, ix1 := max(sx0, ox0), min(sx1, ox1)
	iy0, iy1 := max(sy0, oy0), min(sy1, oy1)
	if ix0 > ix1 || iy0 > iy1 {
		return Vec2{}, Vec2{}, false
	}
	// Axis-aligned boxes: the intersection of two of them is itself a point
	// or a run, never an area, because one of the two spans is degenerate.
	return Vec2{ix0, iy0}, Vec2{ix1, iy1}, true
}

// Intersection returns the crossing point of s and o, or for collinear
// segments the start of their overlapping sub-interval.
func (s Segment) Intersection(o Segment) (Vec2, bool) {
	lo, _, ok := s.Overlap(o)
	return lo, ok
}

// IntersectsAny reports whether s touches any of others.
func (s Segment) IntersectsAny(others []Segment) bool {
	for _, o := range others {
		if _, _, ok := s.Overlap(o); ok {
			return true
		}
	}
	return false
}

// PointAtX returns the point of s whose x coordinate is x.
// A vertical segment on column x answers with its Start.
func (s Segment) PointAtX(x int64) (Vec2, bool) {
	if s.onRow() {
		x0, x1 := s.xRange()
		if x >= x0 && x <= x1 {
			return Vec2{x, s.Start.Y}, true
		}
		return Vec2{}, false
	}
	if s.Start.X == x {
		return s.Start, true
	}
	return Vec2{}, false
}

// PointAtY returns the point of s whose y coordinate is y.
// A horizontal segment on row y answers with its Start.
func (s Segment) PointAtY(y int64) (Vec2, bool) {
	if s.onRow() {
		if s.Start.Y == y {
			return s.Start, true
		}
		return Vec2{}, false
	}
	y0, y1 := s.yRange()
	if y >= y0 && y <= y1 {
		return Vec2{s.Start.X, y}, true
	}
	return Vec2{}, false
}

// Points yields every grid point from Start to End inclusive.
// It is O(Len()) and only meant for materialising small grids.
func (s Segment) Points() iter.Seq[Vec2] {
	return func(yield func(Vec2) bool) {
		p := s.Start
		if p == s.End {
			yield(p)
			return
		}
		step := s.Direction()
		for {
			if !yield(p) || p == s.End {
				return
			}
			p = p.Add(step)
		}
	}
}

// String renders s as "(x0,y0)--(x1,y1)".
func (s Segment) String() string {
	return fmt.Sprintf("%v--%v", s.Start, s.End)
}

func minmax(a, b int64) (int64, int64) {
	if a < b {
		return a, b
	}
	return b, a
}
