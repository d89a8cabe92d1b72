// Package dijkstra implements Dijkstra's shortest-path algorithm on grid.Grid
// boards. A move's cost is |dx| + |dy| (1 orthogonal, 2 diagonal), the same
// cost model the A* engine uses, so the distances here are the reference
// optimum for any A* result on the same board.
//
// It processes cells in order of increasing distance using a min-heap
// priority queue, relaxing each neighbour and updating distances accordingly.
//
// Complexity (C = passable cells, d = 4 or 8):
//
//   - Time:  O(C·d·log C)
//   - Space: O(C·d) worst-case for heap entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Neighbours are relaxed in grid.Offsets order for reproducible predecessors.
//   - Relaxations beyond MaxDistance are dropped, so dist only holds final values.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridstar/grid"
)

// Dijkstra computes shortest distances from the source cell (Options.Source)
// to every reachable cell of g.
//
// Returns:
//
//   - dist: map from cell to minimum distance; unreachable cells are absent.
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance).
//  2. Source must be supplied (ErrNoSource).
//  3. g must be non-nil (ErrNilGrid).
//  4. Source must be in bounds (ErrSourceOutOfBounds) and passable (ErrSourceBlocked).
func Dijkstra(g *grid.Grid, opts ...Option) (map[grid.Pos]int, map[grid.Pos]grid.Pos, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if !cfg.hasSource {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGrid
	}
	if !g.InBounds(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %v", ErrSourceOutOfBounds, cfg.Source)
	}
	if !g.IsPassable(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %v", ErrSourceBlocked, cfg.Source)
	}

	n := g.Size() * g.Size()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[grid.Pos]int, n),
		prev:    make(map[grid.Pos]grid.Pos, n),
		visited: make(map[grid.Pos]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}
	return r.dist, r.prev, nil
}

// Distance returns the shortest-path cost from a to b, or ErrUnreachable.
func Distance(g *grid.Grid, a, b grid.Pos) (int, error) {
	dist, _, err := Dijkstra(g, Source(a))
	if err != nil {
		return 0, err
	}
	d, ok := dist[b]
	if !ok {
		return 0, fmt.Errorf("%w: %v → %v", ErrUnreachable, a, b)
	}
	return d, nil
}

// PathTo rebuilds the source→dest route from a predecessor map.
func PathTo(prev map[grid.Pos]grid.Pos, source, dest grid.Pos) ([]grid.Pos, error) {
	path := []grid.Pos{dest}
	for cur := dest; cur != source; {
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %v → %v", ErrUnreachable, source, dest)
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *grid.Grid            // The input grid; read-only within Dijkstra.
	options Options               // Configuration options.
	dist    map[grid.Pos]int      // Maps cell → current best distance from Source.
	prev    map[grid.Pos]grid.Pos // Maps cell → predecessor on the shortest path.
	visited map[grid.Pos]bool     // Tracks if a cell's distance is finalized.
	pq      nodePQ                // Min-heap of *nodeItem for lazy priority queue.
}

// init pushes Source=0 into the heap.
func (r *runner) init() {
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{pos: r.options.Source, dist: 0})
}

// process repeatedly extracts the cell with the minimum distance and relaxes
// its neighbours until the heap is empty.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.pos

		// skip stale heap entry
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		r.relax(u, item.dist)
	}
}

// relax attempts to improve distances to each passable neighbour of u.
func (r *runner) relax(u grid.Pos, du int) {
	for _, off := range r.g.Offsets() {
		v := u.Add(off)
		if !r.g.IsPassable(v) || r.visited[v] {
			continue
		}
		nd := du + off.Cost()
		if nd > r.options.MaxDistance {
			continue
		}
		if old, ok := r.dist[v]; ok && nd >= old {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{pos: v, dist: nd})
	}
}

// nodeItem is a (cell, distance) pair stored in the priority queue.
type nodeItem struct {
	pos  grid.Pos
	dist int
}

// nodePQ implements heap.Interface as a min-heap by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
