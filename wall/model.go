package wall

import (
	"fmt"

	"github.com/katalvlaran/wallhug/geom"
)

// New replays instructions from the origin (0,0), starting from heading.
// Each instruction rotates the heading and then lays one segment of
// Distance cells. The puzzle form starts with heading geom.Up.
//
// Returns ErrMalformedWall if instructions is empty, heading is not one of
// the four unit directions, a turn is unknown, a distance is not positive or
// the distances add up to more than MaxExtent.
// Complexity: O(N) time and memory for N instructions.
func New(heading geom.Vec2, instructions []Instruction) (*Model, error) {
	if heading.Mag() != 1 {
		return nil, fmt.Errorf("%w: initial heading %v is not a unit direction", ErrMalformedWall, heading)
	}
	if len(instructions) == 0 {
		return nil, fmt.Errorf("%w: no instructions", ErrMalformedWall)
	}

	var (
		cursor geom.Vec2
		total  int64
	)
	m := &Model{
		origin:   cursor,
		segments: make([]geom.Segment, 0, len(instructions)),
		bounds:   geom.RectAt(cursor),
	}
	for i, in := range instructions {
		switch in.Turn {
		case TurnLeft:
			heading = heading.RotateLeft()
		case TurnRight:
			heading = heading.RotateRight()
		default:
			return nil, fmt.Errorf("%w: instruction %d has unknown turn %q", ErrMalformedWall, i, byte(in.Turn))
		}
		if in.Distance <= 0 {
			return nil, fmt.Errorf("%w: instruction %d (%v) has non-positive distance", ErrMalformedWall, i, in)
		}
		if in.Distance > MaxExtent-total {
			return nil, fmt.Errorf("%w: instruction %d (%v) takes the wall past %d cells", ErrMalformedWall, i, in, MaxExtent)
		}
		total += in.Distance
		next := cursor.Add(heading.Mul(in.Distance))
		seg, err := geom.NewSegment(cursor, next)
		if err != nil {
			return nil, fmt.Errorf("%w: instruction %d: %v", ErrMalformedWall, i, err)
		}
		m.segments = append(m.segments, seg)
		m.bounds = m.bounds.Include(next)
		cursor = next
	}
	m.end = cursor

	return m, nil
}

// MustNew is New for fixtures that are known to be well formed.
func MustNew(heading geom.Vec2, instructions []Instruction) *Model {
	m, err := New(heading, instructions)
	if err != nil {
		panic(err)
	}
	return m
}

// Origin returns the first point of the wall, where navigation starts.
func (m *Model) Origin() geom.Vec2 { return m.origin }

// End returns the last point of the wall, the navigation target.
func (m *Model) End() geom.Vec2 { return m.end }

// Len returns the number of wall segments.
func (m *Model) Len() int { return len(m.segments) }

// Segment returns wall segment i. Adjacency is positional: segment i+1 is the
// one that continues from segment i's End.
func (m *Model) Segment(i int) geom.Segment { return m.segments[i] }

// Segments returns a copy of the segment list in replay order.
func (m *Model) Segments() []geom.Segment {
	out := make([]geom.Segment, len(m.segments))
	copy(out, m.segments)
	return out
}

// Bounds returns the inclusive bounding box of every wall point.
func (m *Model) Bounds() geom.Rect { return m.bounds }

// Blocked reports whether p is a wall cell. End counts as a wall cell.
// Complexity: O(N).
func (m *Model) Blocked(p geom.Vec2) bool {
	for _, s := range m.segments {
		if s.Contains(p) {
			return true
		}
	}
	return false
}

// Clear reports whether the straight run from→to touches no wall cell.
// from == to tests a single point. With allowEnd the run may touch the wall
// at End and nowhere else: every overlap with a wall segment must be exactly
// that one point, so a run sliding along the last segment into End is still
// rejected.
//
// Clear panics with geom.ErrInvariantViolation if from and to share neither
// row nor column. Complexity: O(N).
func (m *Model) Clear(from, to geom.Vec2, allowEnd bool) bool {
	run := geom.Run(from, to)
	for _, s := range m.segments {
		lo, hi, ok := run.Overlap(s)
		if !ok {
			continue
		}
		if allowEnd && lo == m.end && hi == m.end {
			continue
		}
		return false
	}
	return true
}
