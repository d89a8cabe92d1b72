package frontier

import "github.com/katalvlaran/gridstar/grid"

// List keeps entries in insertion order and scans all of them on every
// extraction. It is the reference ordering for small boards (≤ 64×64).
type List struct {
	est     Estimator
	entries []Entry
	seq     uint64
}

var _ Frontier = (*List)(nil)

// NewList returns an empty linear-scan frontier.
func NewList(est Estimator) *List {
	return &List{est: est}
}

// Push appends a new entry.
func (l *List) Push(node int, pos grid.Pos, cost int) {
	l.seq++
	l.entries = append(l.entries, Entry{Node: node, Pos: pos, Cost: cost, seq: l.seq})
}

// ExtractMin removes the entry minimising Cost + estimate. Strict comparison
// keeps the first-encountered entry on ties.
func (l *List) ExtractMin() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	best := 0
	bestF := l.entries[0].Cost + l.est(l.entries[0].Pos)
	for i := 1; i < len(l.entries); i++ {
		f := l.entries[i].Cost + l.est(l.entries[i].Pos)
		if f < bestF {
			best, bestF = i, f
		}
	}
	e := l.entries[best]
	l.removeAt(best)

	return e, true
}

// Find returns the entry at pos by linear scan.
func (l *List) Find(pos grid.Pos) (Entry, bool) {
	if i := l.index(pos); i >= 0 {
		return l.entries[i], true
	}
	return Entry{}, false
}

// Replace drops the entry at pos and appends the new route at the back.
func (l *List) Replace(pos grid.Pos, node, cost int) bool {
	i := l.index(pos)
	if i < 0 {
		return false
	}
	l.removeAt(i)
	l.Push(node, pos, cost)

	return true
}

// Remove drops the entry at pos.
func (l *List) Remove(pos grid.Pos) bool {
	i := l.index(pos)
	if i < 0 {
		return false
	}
	l.removeAt(i)

	return true
}

// Len returns the number of entries.
func (l *List) Len() int { return len(l.entries) }

// Positions lists coordinates in insertion order.
func (l *List) Positions() []grid.Pos {
	out := make([]grid.Pos, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Pos
	}
	return out
}

func (l *List) index(pos grid.Pos) int {
	for i := range l.entries {
		if l.entries[i].Pos == pos {
			return i
		}
	}
	return -1
}

// removeAt deletes entry i keeping the order of the rest.
func (l *List) removeAt(i int) {
	copy(l.entries[i:], l.entries[i+1:])
	l.entries = l.entries[:len(l.entries)-1]
}
