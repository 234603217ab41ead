// Package reduce defines rules, statistics and options for the path reducer.
package reduce

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for Reduce.
var (
	// ErrNonTermination indicates the rewrite loop exceeded its cap. Every
	// accepted rewrite shortens the path or drops a step, so this is a defect
	// report, never a normal outcome.
	ErrNonTermination = errors.New("reduce: rewrite limit exceeded")

	// ErrNilInput is returned when the model or the path is nil.
	ErrNilInput = errors.New("reduce: model and path must be non-nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reduce: invalid option supplied")
)

// DefaultMaxRewrites bounds the fixpoint loop when no cap is configured.
const DefaultMaxRewrites = 100000

// Rule identifies a rewrite rule, in priority order.
type Rule int

const (
	// DropZero deletes a zero step and merges its neighbours.
	DropZero Rule = iota
	// ReorderMerge travels C before B and folds it into A.
	ReorderMerge
	// ShiftShorten moves part of A into C, shifting B back.
	ShiftShorten
)

// String names the rule.
func (r Rule) String() string {
	switch r {
	case DropZero:
		return "drop-zero"
	case ReorderMerge:
		return "reorder-merge"
	case ShiftShorten:
		return "shift-shorten"
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

// Rewrite describes one accepted rewrite.
type Rewrite struct {
	Rule   Rule
	Index  int   // index of the first step of the window (or of the zero step)
	Before int64 // path length before the rewrite
	After  int64 // path length after the rewrite
}

// Stats summarises a Reduce run.
type Stats struct {
	Rewrites int          // total accepted rewrites
	ByRule   map[Rule]int // accepted rewrites per rule
	Before   int64        // path length on entry
	After    int64        // path length on exit
}

// Options configures Reduce.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per rewrite.
	Ctx context.Context

	// MaxRewrites caps accepted rewrites; exceeding it is ErrNonTermination.
	MaxRewrites int

	// OnRewrite, if set, observes every accepted rewrite.
	OnRewrite func(Rewrite)

	// internal error recorded during option parsing
	err error
}

// Option configures Reduce via functional arguments.
type Option func(*Options)

// DefaultOptions returns a background context, MaxRewrites =
// DefaultMaxRewrites and no observer.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), MaxRewrites: DefaultMaxRewrites}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxRewrites sets the rewrite cap.
//
//	n > 0:  cap at n rewrites
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxRewrites(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxRewrites must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRewrites = n
	}
}

// WithOnRewrite registers an observer for accepted rewrites.
func WithOnRewrite(fn func(Rewrite)) Option {
	return func(o *Options) {
		o.OnRewrite = fn
	}
}
