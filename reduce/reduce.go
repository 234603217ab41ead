package reduce

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/wallhug/geom"
	"github.com/katalvlaran/wallhug/route"
	"github.com/katalvlaran/wallhug/wall"
)

// reducer holds the mutable state for a single Reduce run.
type reducer struct {
	model *wall.Model
	path  *route.Path
	opts  Options
	stats Stats
}

// Reduce rewrites p in place until it is a fixpoint of every rule.
// p must be valid for m on entry (see route.Path.Validate); it is valid
// again on return and its length never increases.
//
// Returns ErrNilInput, ErrOptionViolation, a validation error wrapping
// geom.ErrInvariantViolation, ErrNonTermination when more than MaxRewrites
// rewrites are accepted, or the context error on cancellation. In the last
// two cases p is left partly reduced.
// Complexity: O(R·S·N) for R rewrites, S steps and N wall segments.
func Reduce(m *wall.Model, p *route.Path, opts ...Option) (Stats, error) {
	if m == nil || p == nil {
		return Stats{}, ErrNilInput
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Stats{}, o.err
	}
	if err := p.Validate(m); err != nil {
		return Stats{}, fmt.Errorf("reduce: input path: %w", err)
	}

	r := &reducer{
		model: m,
		path:  p,
		opts:  o,
		stats: Stats{ByRule: make(map[Rule]int, 3), Before: p.Length()},
	}
	if err := r.run(); err != nil {
		return r.stats, err
	}
	if err := p.Validate(m); err != nil {
		return r.stats, fmt.Errorf("reduce: output path: %w", err)
	}
	r.stats.After = p.Length()

	return r.stats, nil
}

// run applies rewrites until none applies, the cap is exceeded or the
// context ends.
func (r *reducer) run() error {
	for {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		before := r.path.Length()
		rule, idx, ok := r.rewrite()
		if !ok {
			return nil
		}
		r.stats.Rewrites++
		r.stats.ByRule[rule]++
		if r.opts.OnRewrite != nil {
			r.opts.OnRewrite(Rewrite{Rule: rule, Index: idx, Before: before, After: r.path.Length()})
		}
		if r.stats.Rewrites > r.opts.MaxRewrites {
			return fmt.Errorf("%w: %d rewrites, last %s at step %d",
				ErrNonTermination, r.stats.Rewrites, rule, idx)
		}
	}
}

// rewrite applies the first applicable rewrite and reports which.
func (r *reducer) rewrite() (Rule, int, bool) {
	steps := r.path.Steps
	for i, s := range steps {
		if s.IsZero() {
			r.dropZero(i)
			return DropZero, i, true
		}
	}

	cur := r.path.Start
	for i := 0; i+2 < len(steps); i++ {
		before := cur
		cur = cur.Add(steps[i])
		if r.reorderMerge(i, cur) {
			return ReorderMerge, i, true
		}
		if r.shiftShorten(i, before) {
			return ShiftShorten, i, true
		}
	}

	return 0, 0, false
}

// dropZero deletes zero step i and merges the steps on either side.
func (r *reducer) dropZero(i int) {
	steps := slices.Delete(r.path.Steps, i, i+1)
	if i > 0 && i < len(steps) && (steps[i].IsZero() || steps[i-1].SameAxis(steps[i])) {
		steps[i-1] = steps[i-1].Add(steps[i])
		steps = slices.Delete(steps, i, i+1)
	}
	r.path.Steps = steps
}

// reorderMerge tries the window starting at step i; after is the point
// reached once step i is taken.
func (r *reducer) reorderMerge(i int, after geom.Vec2) bool {
	steps := r.path.Steps
	a, b, c := steps[i], steps[i+1], steps[i+2]
	last := i+2 == len(steps)-1

	gain := a.Add(c).Mag() < a.Mag()+c.Mag()
	if !last {
		d := steps[i+3]
		gain = gain || b.Add(d).Mag() < b.Mag()+d.Mag()
	}
	if !gain {
		return false
	}

	// With C gone from the tail, the relocated B is the step that lands on End.
	mid := after.Add(c)
	if !r.model.Clear(after, mid, false) || !r.model.Clear(mid, mid.Add(b), last) {
		return false
	}

	steps[i] = a.Add(c)
	steps = slices.Delete(steps, i+2, i+3)
	if !last {
		steps[i+1] = steps[i+1].Add(steps[i+2])
		steps = slices.Delete(steps, i+2, i+3)
	}
	r.path.Steps = steps

	return true
}

// shiftShorten tries the window starting at step i; before is the point
// where step i begins.
func (r *reducer) shiftShorten(i int, before geom.Vec2) bool {
	steps := r.path.Steps
	a, b, c := steps[i], steps[i+1], steps[i+2]
	if a.Mag() <= 1 || c.Mag() <= 1 {
		return false
	}
	u := a.Unit()
	if c.Add(u).Mag() >= c.Mag() {
		// A and C point the same way; moving length between them gains nothing.
		return false
	}

	k := r.maxShift(before.Add(a), b, u, min(a.Mag(), c.Mag())-1)
	if k == 0 {
		return false
	}
	steps[i] = a.Sub(u.Mul(k))
	steps[i+2] = c.Add(u.Mul(k))

	return true
}

// maxShift returns the largest k in [0, limit] such that B, starting at b0
// and moved back by j·u for every j in 1..k, touches no wall cell.
//
// B is perpendicular to u, so each wall segment blocks a contiguous range of
// j that can be solved for directly: the cost is O(N) however long A and C
// are, where stepping one unit at a time would be O(N·limit).
func (r *reducer) maxShift(b0, b, u geom.Vec2, limit int64) int64 {
	v := b.Unit()
	bu := b0.Dot(u)
	bv0, bv1 := minmax(b0.Dot(v), b0.Add(b).Dot(v))

	first := limit + 1 // smallest blocked j
	for n := 0; n < r.model.Len(); n++ {
		s := r.model.Segment(n)
		sv0, sv1 := minmax(s.Start.Dot(v), s.End.Dot(v))
		if sv1 < bv0 || sv0 > bv1 {
			continue
		}
		// B moved back by j sits at along-u coordinate bu−j.
		su0, su1 := minmax(s.Start.Dot(u), s.End.Dot(u))
		lo, hi := bu-su1, bu-su0
		if hi < 1 {
			continue
		}
		first = min(first, max(lo, 1))
	}

	return first - 1
}

func minmax(a, b int64) (int64, int64) {
	if a < b {
		return a, b
	}
	return b, a
}
