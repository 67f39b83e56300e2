package pathsearch

import (
	"container/heap"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/sidewalk/gridgraph"
)

// Filter reports whether the search may step onto a cell with the given label.
// A nil Filter admits every cell.
type Filter func(gridgraph.Label) bool

// Constrained finds a path from `from` to `to` whose cells, except the
// start and the target, all carry label v.
// Returns ErrNoPath when no such path exists.
func Constrained(g *gridgraph.Grid, from, to gridgraph.Point, v gridgraph.Label, opts ...Option) (gridgraph.Path, error) {
	return Search(g, from, to, func(l gridgraph.Label) bool { return l == v }, opts...)
}

// Unconstrained finds a path from `from` to `to` over any cells.
// On a finite grid it only fails through the expansion cap or cancellation.
func Unconstrained(g *gridgraph.Grid, from, to gridgraph.Point, opts ...Option) (gridgraph.Path, error) {
	return Search(g, from, to, nil, opts...)
}

// Search runs the weighted best-first search with an arbitrary label filter.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Options must be valid (ErrOptionViolation).
//  3. from and to must be in bounds (ErrInvalidEndpoint).
func Search(g *gridgraph.Grid, from, to gridgraph.Point, filter Filter, opts ...Option) (gridgraph.Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !g.InBounds(from) {
		return nil, fmt.Errorf("%w: from %v in %dx%d grid", ErrInvalidEndpoint, from, g.Height, g.Width)
	}
	if !g.InBounds(to) {
		return nil, fmt.Errorf("%w: to %v in %dx%d grid", ErrInvalidEndpoint, to, g.Height, g.Width)
	}

	r := &runner{
		g:        g,
		options:  cfg,
		filter:   filter,
		target:   to,
		targetV:  vec(to),
		reserved: make([]bool, g.Size()),
		arena:    make([]node, 0, 64),
		pq:       make(entryPQ, 0, 64),
		nbuf:     make([]gridgraph.Point, 0, 8),
	}
	r.init(from)

	return r.process()
}

// node is an arena slot: a reserved cell, the slot it was reached from, and
// the number of points on the path ending here.
type node struct {
	p      gridgraph.Point
	parent int32 // -1 for the start
	length int32
}

// runner holds the mutable state for a single search.
type runner struct {
	g        *gridgraph.Grid // read-only
	options  Options
	filter   Filter
	target   gridgraph.Point
	targetV  r2.Vec
	reserved []bool // set on push
	arena    []node
	pq       entryPQ
	seq      uint64
	nbuf     []gridgraph.Point
}

// init reserves the start cell and pushes it with cost 0.
func (r *runner) init(from gridgraph.Point) {
	r.reserved[r.g.Index(from)] = true
	r.arena = append(r.arena, node{p: from, parent: -1, length: 1})
	heap.Init(&r.pq)
	r.push(0, 0)
}

func (r *runner) push(cost float64, slot int32) {
	heap.Push(&r.pq, entry{cost: cost, seq: r.seq, slot: slot})
	r.seq++
}

// process pops the cheapest entry until the target is reached or the
// queue is exhausted.
func (r *runner) process() (gridgraph.Path, error) {
	expansions := 0
	for r.pq.Len() > 0 {
		select {
		case <-r.options.Ctx.Done():
			return nil, r.options.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(entry)
		cur := r.arena[item.slot]
		if cur.p == r.target {
			return r.path(item.slot), nil
		}

		if r.options.MaxExpansions > 0 && expansions >= r.options.MaxExpansions {
			return nil, fmt.Errorf("%w: %w after %d expansions", ErrNoPath, ErrStepLimit, expansions)
		}
		expansions++
		r.options.OnExpand(cur.p, item.cost)

		r.expand(item.slot, cur)
	}

	return nil, ErrNoPath
}

// expand reserves and pushes every admissible neighbour of cur.
func (r *runner) expand(slot int32, cur node) {
	lengthCost := r.options.LengthWeight * float64(cur.length)

	r.nbuf = r.g.Neighbors(cur.p, r.nbuf[:0])
	for _, nb := range r.nbuf {
		i := r.g.Index(nb)
		if r.reserved[i] {
			continue
		}
		// The target is exempt from the label filter.
		if r.filter != nil && nb != r.target && !r.filter(r.g.At(nb)) {
			continue
		}
		r.reserved[i] = true
		r.arena = append(r.arena, node{p: nb, parent: slot, length: cur.length + 1})
		cost := r2.Norm(r2.Sub(vec(nb), r.targetV)) + lengthCost
		r.push(cost, int32(len(r.arena)-1))
	}
}

// path walks parent links back from slot and returns start → slot.
func (r *runner) path(slot int32) gridgraph.Path {
	n := r.arena[slot].length
	out := make(gridgraph.Path, n)
	for i := slot; i >= 0; i = r.arena[i].parent {
		n--
		out[n] = r.arena[i].p
	}

	return out
}

func vec(p gridgraph.Point) r2.Vec {
	return r2.Vec{X: float64(p.Col), Y: float64(p.Row)}
}

// entry is a queued cell: its cost, discovery sequence and arena slot.
type entry struct {
	cost float64
	seq  uint64
	slot int32
}

// entryPQ is a min-heap of entries ordered by (cost, seq).
type entryPQ []entry

// Len returns the number of items in the heap.
func (pq entryPQ) Len() int { return len(pq) }

// Less orders by cost, then by discovery order.
func (pq entryPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be an entry.
func (pq *entryPQ) Push(x any) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *entryPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
