package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/wallhug/geom"
	"github.com/katalvlaran/wallhug/gridgraph"
	"github.com/katalvlaran/wallhug/wall"
)

// Search returns the length of a shortest route from `from` to m.End() that
// touches no wall cell except the end itself. `from` is always passable, so
// the origin (a wall cell) can be used as the start.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilModel).
//  2. options must be valid (ErrOptionViolation).
//  3. the search box must have at most MaxCells cells (ErrTooLarge).
//
// Returns ErrNoPath if the end is enclosed, or the context error on
// cancellation.
func Search(m *wall.Model, from geom.Vec2, opts ...Option) (Result, error) {
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

	box := Box(m, from)
	if area := box.Area(); area > o.MaxCells {
		return Result{}, fmt.Errorf("%w: %dx%d box is %d cells, limit %d",
			ErrTooLarge, box.Width(), box.Height(), area, o.MaxCells)
	}

	r, err := newRunner(m, box, from, o)
	if err != nil {
		return Result{}, err
	}
	if err := r.process(); err != nil {
		return Result{}, err
	}

	res := Result{Length: r.dist[r.goal], Expanded: r.expanded}
	if o.ReturnPath {
		res.Path = r.path()
	}

	return res, nil
}

// Box returns the window Search works in: the wall's bounds and from, grown
// by one cell so a route can pass around the outside.
func Box(m *wall.Model, from geom.Vec2) geom.Rect {
	return m.Bounds().Include(from).Grow(1)
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	opts     Options
	box      geom.Rect
	grid     *gridgraph.GridGraph
	dist     []int64 // best known distance, -1 when unseen
	closed   []bool  // finalised cells
	prev     []int   // predecessor index; nil unless ReturnPath
	start    int
	goal     int
	pq       cellPQ
	expanded int
}

func newRunner(m *wall.Model, box geom.Rect, from geom.Vec2, o Options) (*runner, error) {
	grid, err := gridgraph.NewGridGraph(gridgraph.Raster(m, box, from, m.End()), gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, fmt.Errorf("astar: %w", err)
	}
	n := grid.Len()
	r := &runner{
		opts:   o,
		box:    box,
		grid:   grid,
		dist:   make([]int64, n),
		closed: make([]bool, n),
	}
	r.start, r.goal = r.index(from), r.index(m.End())

	for i := range r.dist {
		r.dist[i] = -1
	}
	if o.ReturnPath {
		r.prev = make([]int, n)
		for i := range r.prev {
			r.prev[i] = -1
		}
	}

	r.dist[r.start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &cellItem{idx: r.start, g: 0, f: r.heuristic(r.start)})

	return r, nil
}

// index maps p to the grid's row-major index.
func (r *runner) index(p geom.Vec2) int {
	return r.grid.Index(int(p.X-r.box.Min.X), int(p.Y-r.box.Min.Y))
}

// coordinate converts a row-major index back to a point.
func (r *runner) coordinate(idx int) geom.Vec2 {
	x, y := r.grid.Coordinate(idx)
	return geom.V(r.box.Min.X+int64(x), r.box.Min.Y+int64(y))
}

func (r *runner) heuristic(idx int) int64 {
	return r.coordinate(idx).Dist(r.coordinate(r.goal))
}

// process pops cells in f order until the goal is finalised.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*cellItem)
		if r.closed[item.idx] {
			continue
		}
		r.closed[item.idx] = true
		r.expanded++
		if item.idx == r.goal {
			return nil
		}
		r.relax(item.idx)
	}

	return fmt.Errorf("%w: %d cells expanded from %v", ErrNoPath, r.expanded, r.coordinate(r.start))
}

// relax pushes every open neighbour of u whose distance improves.
func (r *runner) relax(u int) {
	ux, uy := r.grid.Coordinate(u)
	next := r.dist[u] + 1
	for _, off := range r.grid.NeighborOffsets() {
		vx, vy := ux+off[0], uy+off[1]
		if !r.grid.IsLand(vx, vy) {
			continue
		}
		v := r.grid.Index(vx, vy)
		if r.closed[v] {
			continue
		}
		if d := r.dist[v]; d >= 0 && next >= d {
			continue
		}
		r.dist[v] = next
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &cellItem{idx: v, g: next, f: next + r.heuristic(v)})
	}
}

// path walks predecessors back from the goal.
func (r *runner) path() []geom.Vec2 {
	out := make([]geom.Vec2, r.dist[r.goal]+1)
	for i, idx := len(out)-1, r.goal; i >= 0; i, idx = i-1, r.prev[idx] {
		out[i] = r.coordinate(idx)
	}
	return out
}

// cellItem is a heap entry: a cell with its distance g and estimate f = g + h.
type cellItem struct {
	idx int
	g   int64
	f   int64
}

// cellPQ is a min-heap of *cellItem ordered by f, then by larger g.
type cellPQ []*cellItem

func (pq cellPQ) Len() int { return len(pq) }

func (pq cellPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].g > pq[j].g
}

func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *cellPQ) Push(x any) { *pq = append(*pq, x.(*cellItem)) }

func (pq *cellPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
