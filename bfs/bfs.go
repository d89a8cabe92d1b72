package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridstar/grid"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	pos   grid.Pos
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid  *grid.Grid
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGridNil, ErrStartOutOfBounds or ErrStartBlocked for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g *grid.Grid, start grid.Pos, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if !g.IsPassable(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}

	n := g.Size() * g.Size()
	w := &walker{
		grid:  g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]grid.Pos, 0, n),
			Depth:  make(map[grid.Pos]int, n),
			Parent: make(map[grid.Pos]grid.Pos, n),
		},
	}

	// Seed queue with start cell (no parent)
	w.res.Depth[start] = 0
	w.opts.OnEnqueue(start, 0)
	w.queue = append(w.queue, queueItem{pos: start})

	return w.res, w.loop()
}

// Reachable reports whether b can be reached from a under g's connectivity.
// Invalid or blocked endpoints are unreachable.
func Reachable(g *grid.Grid, a, b grid.Pos) bool {
	_, err := BFS(g, a, WithOnVisit(func(p grid.Pos, _ int) error {
		if p == b {
			return errFound
		}
		return nil
	}))
	return errors.Is(err, errFound)
}

// errFound stops Reachable early.
var errFound = errors.New("bfs: destination found")

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.pos)
		if err := w.opts.OnVisit(item.pos, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.pos, err)
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// passable neighbour.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, d := range w.grid.Offsets() {
		nbr := item.pos.Add(d)
		if !w.grid.IsPassable(nbr) || !w.opts.FilterNeighbor(item.pos, nbr) {
			continue
		}
		// first time seen?
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		w.res.Depth[nbr] = nextDepth
		w.res.Parent[nbr] = item.pos
		w.opts.OnEnqueue(nbr, nextDepth)
		w.queue = append(w.queue, queueItem{pos: nbr, depth: nextDepth})
	}
}
