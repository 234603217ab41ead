package hug

import (
	"fmt"

	"github.com/katalvlaran/wallhug/geom"
	"github.com/katalvlaran/wallhug/route"
	"github.com/katalvlaran/wallhug/wall"
)

// walker encapsulates mutable traversal state.
type walker struct {
	model   *wall.Model
	opts    Options
	hand    Handedness
	cursor  geom.Vec2
	heading geom.Vec2
	path    *route.Path
}

// Traverse follows the wall of m on the side chosen by WithHand and returns
// the emitted path, already validated against m.
//
// The start anchor is the cell beside the origin on the hugging side of the
// first segment, and the initial heading runs along that segment. A wall
// that ends on its own origin yields an empty path anchored at the origin.
//
// Returns ErrNilModel, ErrOptionViolation, ErrTraversalExhausted, the
// context error on cancellation, or a route validation error (wrapping
// geom.ErrInvariantViolation) when the walk strays onto another part of the
// wall.
// Complexity: O(N²) for N segments, O(N) per iteration for the bee-line test.
func Traverse(m *wall.Model, opts ...Option) (*route.Path, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if m.End() == m.Origin() {
		// A closed loop: already there, nothing to walk.
		return route.New(m.Origin(), m.Origin()), nil
	}

	heading := m.Segment(0).Direction()
	start := m.Origin().Sub(o.Hand.toward(heading))
	w := &walker{
		model:   m,
		opts:    o,
		hand:    o.Hand,
		cursor:  start,
		heading: heading,
		path:    route.New(m.Origin(), start),
	}
	if err := w.walk(); err != nil {
		return nil, err
	}
	if err := w.path.Validate(m); err != nil {
		return nil, fmt.Errorf("hug: %s-hand path: %w", o.Hand, err)
	}

	return w.path, nil
}

// walk hugs segments in order until the bee-line check succeeds.
func (w *walker) walk() error {
	n := w.model.Len()
	for i := 0; i < n; i++ {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		hugged := w.model.Segment(i)
		toward := w.hand.toward(w.heading)
		target := hugged.End.Add(w.heading).Sub(toward)
		hit := target.Sub(w.heading)

		bumped := i+1 < n && w.model.Segment(i+1).Contains(hit)
		stop := target
		if bumped {
			stop = hit.Sub(w.heading)
		}

		if w.beeLine(i, stop) {
			return nil
		}

		if bumped {
			w.heading = w.hand.away(w.heading)
			w.moveTo(MoveBump, i, stop)
			continue
		}

		w.moveTo(MoveHug, i, target)
		w.heading = toward
		w.move(MoveTurn, i, w.heading)
	}

	return fmt.Errorf("%w: %d segments hugged, cursor at %v, end at %v",
		ErrTraversalExhausted, n, w.cursor, w.model.End())
}

// beeLine looks for the end's row, then its column, on the known-safe run
// cursor→stop. On success it emits the run to that point and the straight
// line to the end.
func (w *walker) beeLine(i int, stop geom.Vec2) bool {
	end := w.model.End()
	run := geom.Run(w.cursor, stop)
	if p, ok := run.PointAtY(end.Y); ok && w.reaches(p) {
		w.finish(i, p)
		return true
	}
	if p, ok := run.PointAtX(end.X); ok && w.reaches(p) {
		w.finish(i, p)
		return true
	}
	return false
}

// reaches reports whether the straight line p→end touches the wall only at end.
func (w *walker) reaches(p geom.Vec2) bool {
	end := w.model.End()
	return p == end || w.model.Clear(p, end, true)
}

func (w *walker) finish(i int, p geom.Vec2) {
	w.moveTo(MoveBeeLine, i, p)
	w.moveTo(MoveBeeLine, i, w.model.End())
}

func (w *walker) moveTo(kind MoveKind, i int, p geom.Vec2) {
	w.move(kind, i, p.Sub(w.cursor))
}

func (w *walker) move(kind MoveKind, i int, step geom.Vec2) {
	if w.opts.OnMove != nil {
		w.opts.OnMove(Move{Kind: kind, Wall: i, From: w.cursor, Step: step, Heading: w.heading})
	}
	w.path.Add(step)
	w.cursor = w.cursor.Add(step)
}
