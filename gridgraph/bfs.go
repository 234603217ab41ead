package gridgraph

import (
	"context"
	"fmt"
)

// walker encapsulates mutable BFS state.
type walker struct {
	gg    *GridGraph
	opts  BFSOptions
	ctx   context.Context
	queue []int
	res   *BFSResult
}

// BFS runs breadth-first search over the land cells of gg from the cell at
// row-major index start. The start itself need not be land.
// Returns ErrCellIndex for a start outside the grid, ErrOptionViolation for
// bad options, or the context error on cancellation.
// Complexity: O(W×H×d) time, O(W×H) memory.
func (gg *GridGraph) BFS(start int, opts ...Option) (*BFSResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := gg.Len()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start %d of %d", ErrCellIndex, start, n)
	}

	w := &walker{
		gg:    gg,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	w.enqueue(start, 0, -1)
	return w.res, w.loop()
}

func (w *walker) enqueue(idx, d, parent int) {
	w.res.Depth[idx] = d
	w.res.Parent[idx] = parent
	w.queue = append(w.queue, idx)
}

// loop processes the queue until empty or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		u := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, u)
		w.enqueueNeighbors(u)
	}
	return nil
}

// enqueueNeighbors enqueues every unseen land neighbor of u that passes the
// filter and the depth limit.
func (w *walker) enqueueNeighbors(u int) {
	next := w.res.Depth[u] + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	ux, uy := w.gg.Coordinate(u)
	for _, d := range w.gg.NeighborOffsets() {
		vx, vy := ux+d[0], uy+d[1]
		if !w.gg.IsLand(vx, vy) {
			continue
		}
		v := w.gg.Index(vx, vy)
		if w.res.Depth[v] >= 0 || !w.opts.FilterNeighbor(u, v) {
			continue
		}
		w.enqueue(v, next, u)
	}
}
