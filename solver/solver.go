package solver

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wallhug/astar"
	"github.com/katalvlaran/wallhug/hug"
	"github.com/katalvlaran/wallhug/reduce"
	"github.com/katalvlaran/wallhug/wall"
)

// Solve computes the shortest hugging length for m.
//
// A failed variant does not fail the call: its error is kept in
// Result.Variants. Solve returns an error only for invalid input, on
// cancellation, or when every variant failed, in which case the error joins
// theirs.
func Solve(ctx context.Context, m *wall.Model, opts ...Option) (Result, error) {
	if m == nil {
		return Result{}, ErrNilModel
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	res := Result{
		Variants:  make([]Variant, len(o.Hands)),
		Reference: -1,
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, h := range o.Hands {
		g.Go(func() error {
			res.Variants[i] = runVariant(gctx, m, h, o)
			return gctx.Err()
		})
	}
	if o.Reference {
		g.Go(func() error {
			res.Reference, res.ReferenceErr = reference(gctx, m, o)
			if errors.Is(res.ReferenceErr, context.Canceled) || errors.Is(res.ReferenceErr, context.DeadlineExceeded) {
				return res.ReferenceErr
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("solver: %w", err)
	}

	best := -1
	var errs []error
	for i, v := range res.Variants {
		if v.Err != nil {
			errs = append(errs, v.Err)
			continue
		}
		if best < 0 || v.Length < res.Variants[best].Length {
			best = i
		}
	}
	if best < 0 {
		return res, errors.Join(errs...)
	}
	res.Length = res.Variants[best].Length
	res.Hand = res.Variants[best].Hand
	res.Path = res.Variants[best].Path

	return res, nil
}

// runVariant traverses and reduces one side of the wall.
func runVariant(ctx context.Context, m *wall.Model, h hug.Handedness, o Options) Variant {
	v := Variant{Hand: h}

	hopts := []hug.Option{hug.WithContext(ctx), hug.WithHand(h)}
	if o.OnMove != nil {
		hopts = append(hopts, hug.WithOnMove(func(mv hug.Move) { o.OnMove(h, mv) }))
	}
	p, err := hug.Traverse(m, hopts...)
	if err != nil {
		v.Err = fmt.Errorf("%s hand: %w", h, err)
		return v
	}
	v.Raw = p.Length()

	ropts := []reduce.Option{reduce.WithContext(ctx), reduce.WithMaxRewrites(o.MaxRewrites)}
	if o.OnRewrite != nil {
		ropts = append(ropts, reduce.WithOnRewrite(func(rw reduce.Rewrite) { o.OnRewrite(h, rw) }))
	}
	stats, err := reduce.Reduce(m, p, ropts...)
	v.Stats = stats
	if err != nil {
		v.Err = fmt.Errorf("%s hand: %w", h, err)
		return v
	}
	v.Path = p
	v.Length = p.Length()

	return v
}

// reference runs A* from the origin. A wall too large for it is skipped.
func reference(ctx context.Context, m *wall.Model, o Options) (int64, error) {
	r, err := astar.Search(m, m.Origin(),
		astar.WithContext(ctx),
		astar.WithMaxCells(o.MaxReferenceCells),
	)
	if errors.Is(err, astar.ErrTooLarge) {
		return -1, nil
	}
	if err != nil {
		return -1, err
	}
	return r.Length, nil
}
