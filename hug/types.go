// Package hug defines handedness, trace events and options for the
// wall-hugging traversal.
package hug

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/wallhug/geom"
)

// Sentinel errors for Traverse.
var (
	// ErrTraversalExhausted indicates every wall segment was hugged without
	// reaching the end. A well-formed wall never gets here.
	ErrTraversalExhausted = errors.New("hug: ran out of wall segments before reaching the end")

	// ErrNilModel is returned when Traverse receives a nil model.
	ErrNilModel = errors.New("hug: wall model is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("hug: invalid option supplied")
)

// Handedness selects which side of the wall the walker keeps its hand on.
// It is a sign: it flips the sense of both rotations and nothing else.
type Handedness int

const (
	// LeftHand keeps the wall on the walker's left.
	LeftHand Handedness = 1
	// RightHand keeps the wall on the walker's right.
	RightHand Handedness = -1
)

// String returns "left" or "right".
func (h Handedness) String() string {
	switch h {
	case LeftHand:
		return "left"
	case RightHand:
		return "right"
	}
	return fmt.Sprintf("Handedness(%d)", int(h))
}

// ParseHandedness accepts "left"/"l" and "right"/"r".
func ParseHandedness(s string) (Handedness, error) {
	switch s {
	case "left", "l", "L":
		return LeftHand, nil
	case "right", "r", "R":
		return RightHand, nil
	}
	return 0, fmt.Errorf("%w: unknown handedness %q", ErrOptionViolation, s)
}

// toward rotates heading so it points at the hugged wall.
func (h Handedness) toward(heading geom.Vec2) geom.Vec2 {
	if h == LeftHand {
		return heading.RotateLeft()
	}
	return heading.RotateRight()
}

// away rotates heading so it points from the hugged wall.
func (h Handedness) away(heading geom.Vec2) geom.Vec2 {
	if h == LeftHand {
		return heading.RotateRight()
	}
	return heading.RotateLeft()
}

// MoveKind classifies an emitted move.
type MoveKind int

const (
	// MoveHug runs along the hugged segment to the cell past its far end.
	MoveHug MoveKind = iota
	// MoveTurn is the unit step around a convex corner onto the next segment.
	MoveTurn
	// MoveBump stops one cell short of a concave corner.
	MoveBump
	// MoveBeeLine is one of the two final moves of the shortcut to the end.
	MoveBeeLine
)

// String names the move kind.
func (k MoveKind) String() string {
	switch k {
	case MoveHug:
		return "hug"
	case MoveTurn:
		return "turn"
	case MoveBump:
		return "bump"
	case MoveBeeLine:
		return "bee-line"
	}
	return fmt.Sprintf("MoveKind(%d)", int(k))
}

// Move is one emitted step, reported before it is merged into the path.
// Step may be zero when the cursor is already where the move leads.
type Move struct {
	Kind    MoveKind
	Wall    int       // index of the hugged wall segment
	From    geom.Vec2 // cursor before the move
	Step    geom.Vec2
	Heading geom.Vec2 // heading after the move
}

// Options configures Traverse.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per hugged segment.
	Ctx context.Context

	// Hand chooses the side of the wall to follow.
	Hand Handedness

	// OnMove, if set, observes every emitted move. It is nil by default and
	// costs nothing when unset.
	OnMove func(Move)

	// internal error recorded during option parsing
	err error
}

// Option configures Traverse via functional arguments.
type Option func(*Options)

// DefaultOptions returns LeftHand with a background context and no observer.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Hand: LeftHand}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHand selects the handedness. Anything but LeftHand or RightHand is
// recorded and surfaced as ErrOptionViolation.
func WithHand(h Handedness) Option {
	return func(o *Options) {
		if h != LeftHand && h != RightHand {
			o.err = fmt.Errorf("%w: handedness must be ±1, got %d", ErrOptionViolation, int(h))
			return
		}
		o.Hand = h
	}
}

// WithOnMove registers an observer for emitted moves.
func WithOnMove(fn func(Move)) Option {
	return func(o *Options) {
		o.OnMove = fn
	}
}
