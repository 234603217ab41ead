// Package solver defines options and results for the end-to-end solve.
package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wallhug/astar"
	"github.com/katalvlaran/wallhug/hug"
	"github.com/katalvlaran/wallhug/reduce"
	"github.com/katalvlaran/wallhug/route"
)

// Sentinel errors for Solve.
var (
	// ErrNilModel is returned when Solve receives a nil model.
	ErrNilModel = errors.New("solver: wall model is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Variant is the outcome of one handedness: traverse, then reduce.
type Variant struct {
	Hand   hug.Handedness
	Raw    int64       // length of the traversal before reduction
	Length int64       // length after reduction, lead-in included
	Path   *route.Path // reduced path; nil when Err is set
	Stats  reduce.Stats
	Err    error
}

// Result is the outcome of Solve.
type Result struct {
	// Length is the shortest reduced length over the successful variants.
	Length int64
	// Hand and Path belong to the variant that produced Length.
	Hand hug.Handedness
	Path *route.Path

	// Variants holds every requested handedness in request order, failed
	// ones included.
	Variants []Variant

	// Reference is the exact shortest length from the origin, or -1 when the
	// reference search was not requested or the wall is too large for it.
	Reference int64
	// ReferenceErr records a reference search failure other than the size cap.
	ReferenceErr error
}

// Options configures Solve.
type Options struct {
	// Hands lists the handedness variants to run, in tie-break order.
	Hands []hug.Handedness

	// Reference enables the A* cross-check.
	Reference bool

	// MaxReferenceCells is handed to astar.WithMaxCells.
	MaxReferenceCells int64

	// MaxRewrites is handed to reduce.WithMaxRewrites.
	MaxRewrites int

	// OnMove and OnRewrite observe the variants. Variants run concurrently,
	// so both may be called from several goroutines at once.
	OnMove    func(hug.Handedness, hug.Move)
	OnRewrite func(hug.Handedness, reduce.Rewrite)

	// internal error recorded during option parsing
	err error
}

// Option configures Solve via functional arguments.
type Option func(*Options)

// DefaultOptions runs both hands, left first, without the reference search.
func DefaultOptions() Options {
	return Options{
		Hands:             []hug.Handedness{hug.LeftHand, hug.RightHand},
		MaxReferenceCells: astar.DefaultMaxCells,
		MaxRewrites:       reduce.DefaultMaxRewrites,
	}
}

// WithHands selects the variants to run. At least one is required and each
// must be LeftHand or RightHand.
func WithHands(hands ...hug.Handedness) Option {
	return func(o *Options) {
		if len(hands) == 0 {
			o.err = fmt.Errorf("%w: no handedness selected", ErrOptionViolation)
			return
		}
		for _, h := range hands {
			if h != hug.LeftHand && h != hug.RightHand {
				o.err = fmt.Errorf("%w: handedness must be ±1, got %d", ErrOptionViolation, int(h))
				return
			}
		}
		o.Hands = append([]hug.Handedness(nil), hands...)
	}
}

// WithReference toggles the A* cross-check.
func WithReference(on bool) Option {
	return func(o *Options) {
		o.Reference = on
	}
}

// WithMaxReferenceCells caps the reference search box; larger walls skip it.
func WithMaxReferenceCells(n int64) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxReferenceCells must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxReferenceCells = n
	}
}

// WithMaxRewrites caps the reducer of every variant.
func WithMaxRewrites(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxRewrites must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRewrites = n
	}
}

// WithOnMove registers an observer for traversal moves.
func WithOnMove(fn func(hug.Handedness, hug.Move)) Option {
	return func(o *Options) {
		o.OnMove = fn
	}
}

// WithOnRewrite registers an observer for reducer rewrites.
func WithOnRewrite(fn func(hug.Handedness, reduce.Rewrite)) Option {
	return func(o *Options) {
		o.OnRewrite = fn
	}
}
