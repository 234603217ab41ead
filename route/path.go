package route

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/wallhug/geom"
	"github.com/katalvlaran/wallhug/wall"
)

// Sentinel errors for path validation. Each wraps geom.ErrInvariantViolation,
// since a broken path is always a logic defect upstream.
var (
	// ErrWallCrossed indicates a step traces a wall cell.
	ErrWallCrossed = fmt.Errorf("route: path crosses the wall: %w", geom.ErrInvariantViolation)
	// ErrMissedEnd indicates the steps do not sum to the wall's end.
	ErrMissedEnd = fmt.Errorf("route: path does not reach the end: %w", geom.ErrInvariantViolation)
	// ErrBadStep indicates a zero step or two adjacent steps on the same axis.
	ErrBadStep = fmt.Errorf("route: steps must be nonzero and alternate axis: %w", geom.ErrInvariantViolation)
	// ErrNilPath is returned when a nil *Path is validated.
	ErrNilPath = errors.New("route: path is nil")
)

// Path is an anchored list of axis-aligned steps.
// Origin is where travel really starts; the lead-in Origin→Start is part of
// the length but never rewritten.
type Path struct {
	Origin geom.Vec2
	Start  geom.Vec2
	Steps  []geom.Vec2
}

// New returns an empty path anchored at start, reached from origin.
func New(origin, start geom.Vec2) *Path {
	return &Path{Origin: origin, Start: start}
}

// Add appends step, pre-merging it into the previous step when both lie on
// the same axis. Zero steps are dropped, and a step that cancels its
// predecessor removes it, so the next Add can merge across the gap.
func (p *Path) Add(step geom.Vec2) {
	if step.IsZero() {
		return
	}
	n := len(p.Steps)
	if n > 0 && p.Steps[n-1].SameAxis(step) {
		merged := p.Steps[n-1].Add(step)
		if merged.IsZero() {
			p.Steps = p.Steps[:n-1]
			return
		}
		p.Steps[n-1] = merged
		return
	}
	p.Steps = append(p.Steps, step)
}

// Length returns the total travel distance, lead-in included.
func (p *Path) Length() int64 {
	return p.Origin.Dist(p.Start) + p.StepsLength()
}

// StepsLength returns the travel distance from Start to the endpoint.
func (p *Path) StepsLength() int64 {
	var total int64
	for _, s := range p.Steps {
		total += s.Mag()
	}
	return total
}

// Endpoint returns Start plus every step.
func (p *Path) Endpoint() geom.Vec2 {
	cur := p.Start
	for _, s := range p.Steps {
		cur = cur.Add(s)
	}
	return cur
}

// Points returns the corner points of the path: Start, then the point after
// each step.
func (p *Path) Points() []geom.Vec2 {
	pts := make([]geom.Vec2, 0, len(p.Steps)+1)
	cur := p.Start
	pts = append(pts, cur)
	for _, s := range p.Steps {
		cur = cur.Add(s)
		pts = append(pts, cur)
	}
	return pts
}

// Clone returns a deep copy of p.
func (p *Path) Clone() *Path {
	c := &Path{Origin: p.Origin, Start: p.Start, Steps: make([]geom.Vec2, len(p.Steps))}
	copy(c.Steps, p.Steps)
	return c
}

// Validate checks every Path invariant against m and returns the first
// violation, wrapped with the offending step index.
// Complexity: O(S·N) for S steps and N wall segments.
func (p *Path) Validate(m *wall.Model) error {
	if p == nil {
		return ErrNilPath
	}
	if got := p.Endpoint(); got != m.End() {
		return fmt.Errorf("%w: ends at %v, want %v", ErrMissedEnd, got, m.End())
	}
	for i, s := range p.Steps {
		if !s.IsHorizontal() && !s.IsVertical() {
			return fmt.Errorf("%w: step %d is %v", ErrBadStep, i, s)
		}
		if i > 0 && p.Steps[i-1].SameAxis(s) {
			return fmt.Errorf("%w: steps %d and %d share an axis", ErrBadStep, i-1, i)
		}
	}
	if len(p.Steps) == 0 {
		// Start == End here, which is the one point allowed on the wall.
		return nil
	}
	if !m.Clear(p.Start, p.Start, false) {
		return fmt.Errorf("%w: anchor %v is a wall cell", ErrWallCrossed, p.Start)
	}
	cur := p.Start
	last := len(p.Steps) - 1
	for i, s := range p.Steps {
		next := cur.Add(s)
		if !m.Clear(cur, next, i == last) {
			return fmt.Errorf("%w: step %d %v from %v", ErrWallCrossed, i, s, cur)
		}
		cur = next
	}

	return nil
}

// String renders the path as "start: step step ...".
func (p *Path) String() string {
	var b strings.Builder
	b.WriteString(p.Start.String())
	b.WriteString(":")
	for _, s := range p.Steps {
		b.WriteString(" ")
		b.WriteString(s.String())
	}
	return b.String()
}
