package frontier

import (
	"container/heap"
	"sort"

	"github.com/katalvlaran/gridstar/grid"
)

// Heap is a binary-heap frontier that extracts entries in the same order as
// List: lowest g + h first, lowest insertion sequence on ties.
type Heap struct {
	est   Estimator
	items itemPQ
	byPos map[grid.Pos]*item
	seq   uint64
}

var _ Frontier = (*Heap)(nil)

// NewHeap returns an empty heap frontier.
func NewHeap(est Estimator) *Heap {
	return &Heap{est: est, byPos: make(map[grid.Pos]*item)}
}

// Push inserts a new entry.
func (h *Heap) Push(node int, pos grid.Pos, cost int) {
	h.seq++
	it := &item{
		entry: Entry{Node: node, Pos: pos, Cost: cost, seq: h.seq},
		f:     cost + h.est(pos),
	}
	heap.Push(&h.items, it)
	h.byPos[pos] = it
}

// ExtractMin pops the lowest (g + h, seq) entry.
func (h *Heap) ExtractMin() (Entry, bool) {
	if h.items.Len() == 0 {
		return Entry{}, false
	}
	it := heap.Pop(&h.items).(*item)
	delete(h.byPos, it.entry.Pos)

	return it.entry, true
}

// Find returns the entry at pos.
func (h *Heap) Find(pos grid.Pos) (Entry, bool) {
	if it, ok := h.byPos[pos]; ok {
		return it.entry, true
	}
	return Entry{}, false
}

// Replace updates the entry at pos in place and re-sequences it.
func (h *Heap) Replace(pos grid.Pos, node, cost int) bool {
	it, ok := h.byPos[pos]
	if !ok {
		return false
	}
	h.seq++
	it.entry.Node = node
	it.entry.Cost = cost
	it.entry.seq = h.seq
	it.f = cost + h.est(pos)
	heap.Fix(&h.items, it.index)

	return true
}

// Remove drops the entry at pos.
func (h *Heap) Remove(pos grid.Pos) bool {
	it, ok := h.byPos[pos]
	if !ok {
		return false
	}
	heap.Remove(&h.items, it.index)
	delete(h.byPos, pos)

	return true
}

// Len returns the number of entries.
func (h *Heap) Len() int { return h.items.Len() }

// Positions lists coordinates in insertion order.
func (h *Heap) Positions() []grid.Pos {
	sorted := make([]*item, len(h.items))
	copy(sorted, h.items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].entry.seq < sorted[j].entry.seq })
	out := make([]grid.Pos, len(sorted))
	for i, it := range sorted {
		out[i] = it.entry.Pos
	}
	return out
}

// item is a heap slot; index is maintained by Swap for heap.Fix / heap.Remove.
type item struct {
	entry Entry
	f     int
	index int
}

// itemPQ is a min-heap of *item ordered by (f, seq).
type itemPQ []*item

func (pq itemPQ) Len() int { return len(pq) }

func (pq itemPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].entry.seq < pq[j].entry.seq
}

func (pq itemPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *itemPQ) Push(x any) {
	it := x.(*item)
	it.index = len(*pq)
	*pq = append(*pq, it)
}

func (pq *itemPQ) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*pq = old[:n-1]

	return it
}
