// Package astar defines options, results and error definitions for the
// reference shortest-path search.
package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/wallhug/geom"
)

// Sentinel errors for Search.
var (
	// ErrNoPath indicates the end cannot be reached from the start cell.
	ErrNoPath = errors.New("astar: end is unreachable from the start cell")

	// ErrTooLarge indicates the search box has more cells than MaxCells.
	ErrTooLarge = errors.New("astar: search box exceeds the cell limit")

	// ErrNilModel is returned when Search receives a nil model.
	ErrNilModel = errors.New("astar: wall model is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// DefaultMaxCells bounds the grid Search is willing to allocate.
const DefaultMaxCells int64 = 1 << 20

// Options configures Search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expanded cell.
	Ctx context.Context

	// MaxCells caps the area of the search box.
	MaxCells int64

	// ReturnPath requests the cell sequence of one shortest path.
	ReturnPath bool

	// internal error recorded during option parsing
	err error
}

// Option configures Search via functional arguments.
type Option func(*Options)

// DefaultOptions returns a background context, DefaultMaxCells and no path.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxCells: DefaultMaxCells,
	}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxCells sets the cell limit. n must be positive.
func WithMaxCells(n int64) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxCells must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCells = n
	}
}

// WithReturnPath asks Search to reconstruct the cells of a shortest path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// Result is the outcome of a successful Search.
type Result struct {
	Length   int64       // number of unit moves from start to end
	Expanded int         // cells popped and finalised
	Path     []geom.Vec2 // start..end inclusive; nil unless ReturnPath
}
