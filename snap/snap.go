package snap

import (
	"fmt"

	"github.com/katalvlaran/sidewalk/gridgraph"
)

// Snapping enumerates neighbours in its own fixed order, which settles ties
// between equally near cells: up-left, up, left, down-right, down, right,
// down-left, up-right. Under 4-connectivity the axis moves keep that order.
var (
	order8 = []gridgraph.Point{
		{Row: -1, Col: -1}, {Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 1, Col: 1},
		{Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: -1}, {Row: -1, Col: 1},
	}
	order4 = []gridgraph.Point{
		{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 1, Col: 0}, {Row: 0, Col: 1},
	}
)

// neighborOrder returns the snap enumeration order for c.
func neighborOrder(c gridgraph.Connectivity) []gridgraph.Point {
	if c == gridgraph.Conn4 {
		return order4
	}

	return order8
}

// node is one arena slot: a discovered cell and the slot it was reached from.
type node struct {
	p      gridgraph.Point
	parent int32 // -1 for the start
	depth  int32
}

// walker encapsulates mutable BFS state for a single snap.
type walker struct {
	g       *gridgraph.Grid
	opts    Options
	stop    Predicate
	arena   []node // FIFO frontier; head advances, slots stay for reconstruction
	head    int
	visited []bool
	offsets []gridgraph.Point
}

// ToSurface snaps start to the nearest cell labelled surface.
func ToSurface(g *gridgraph.Grid, start gridgraph.Point, surface gridgraph.Label, opts ...Option) (gridgraph.Path, error) {
	return Snap(g, start, func(_ gridgraph.Point, v gridgraph.Label) bool {
		return v == surface
	}, opts...)
}

// ToBoundary snaps start to the nearest cell whose label differs from the
// label under start.
func ToBoundary(g *gridgraph.Grid, start gridgraph.Point, opts ...Option) (gridgraph.Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrInvalidStart, start, g.Height, g.Width)
	}
	origin := g.At(start)

	return Snap(g, start, func(_ gridgraph.Point, v gridgraph.Label) bool {
		return v != origin
	}, opts...)
}

// Snap runs breadth-first search from start and returns the minimum-step
// Path to the first dequeued cell satisfying stop.
// Returns ErrNilGrid, ErrInvalidStart, ErrOptionViolation for bad input,
// ErrNoPath when the reachable region holds no qualifying cell, or the
// context error on cancellation.
func Snap(g *gridgraph.Grid, start gridgraph.Point, stop Predicate, opts ...Option) (gridgraph.Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrInvalidStart, start, g.Height, g.Width)
	}

	w := &walker{
		g:       g,
		opts:    o,
		stop:    stop,
		arena:   make([]node, 0, 64),
		visited: make([]bool, g.Size()),
		offsets: neighborOrder(g.Conn),
	}
	w.enqueue(start, -1, 0)

	return w.loop()
}

// enqueue marks p visited and appends it to the frontier.
func (w *walker) enqueue(p gridgraph.Point, parent, depth int32) {
	w.visited[w.g.Index(p)] = true
	w.arena = append(w.arena, node{p: p, parent: parent, depth: depth})
}

// loop processes the frontier until the predicate holds, the frontier
// empties, the step cap is hit, or the context is cancelled.
func (w *walker) loop() (gridgraph.Path, error) {
	steps := 0
	for w.head < len(w.arena) {
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}
		if w.opts.MaxSteps > 0 && steps >= w.opts.MaxSteps {
			return nil, fmt.Errorf("%w: %w after %d cells", ErrNoPath, ErrStepLimit, steps)
		}
		steps++

		idx := int32(w.head)
		cur := w.arena[w.head]
		w.head++
		w.opts.OnVisit(cur.p, int(cur.depth))

		if w.stop(cur.p, w.g.At(cur.p)) {
			return w.path(idx), nil
		}

		for _, d := range w.offsets {
			nb := cur.p.Add(d)
			if w.g.InBounds(nb) && !w.visited[w.g.Index(nb)] {
				w.enqueue(nb, idx, cur.depth+1)
			}
		}
	}

	return nil, ErrNoPath
}

// path walks parent links back from slot idx and returns start → idx.
func (w *walker) path(idx int32) gridgraph.Path {
	n := w.arena[idx].depth + 1
	out := make(gridgraph.Path, n)
	for i := idx; i >= 0; i = w.arena[i].parent {
		n--
		out[n] = w.arena[i].p
	}

	return out
}
