package frontier

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridstar/grid"
)

// ErrUnknownKind is returned by ParseKind for an unknown implementation name.
var ErrUnknownKind = errors.New("frontier: unknown kind")

// Estimator returns the heuristic remaining cost from a position to the goal.
type Estimator func(p grid.Pos) int

// Entry is one open-set record.
type Entry struct {
	// Node is the caller's handle for the search node (an arena index).
	Node int
	// Pos is the node's coordinate; unique within a frontier.
	Pos grid.Pos
	// Cost is the accumulated path cost g.
	Cost int

	seq uint64
}

// Frontier is the open set used by the search engine.
type Frontier interface {
	// Push inserts a new entry. pos must not already be present.
	Push(node int, pos grid.Pos, cost int)
	// ExtractMin removes and returns the entry with the lowest Cost + estimate,
	// first-inserted on ties. ok is false when the frontier is empty.
	ExtractMin() (e Entry, ok bool)
	// Find returns the entry queued at pos, if any.
	Find(pos grid.Pos) (e Entry, ok bool)
	// Replace swaps the node and cost of the entry at pos and moves it to the
	// back of the insertion order. Reports false if pos is not queued.
	Replace(pos grid.Pos, node, cost int) bool
	// Remove drops the entry at pos. Reports false if pos is not queued.
	Remove(pos grid.Pos) bool
	// Len returns the number of queued entries.
	Len() int
	// Positions lists queued coordinates in insertion order.
	Positions() []grid.Pos
}

// Kind selects a Frontier implementation.
type Kind int

const (
	// KindList is the linear-scan list.
	KindList Kind = iota
	// KindHeap is the binary heap.
	KindHeap
)

// String returns "list" or "heap".
func (k Kind) String() string {
	if k == KindHeap {
		return "heap"
	}
	return "list"
}

// ParseKind accepts "list" or "heap" (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "list", "":
		return KindList, nil
	case "heap":
		return KindHeap, nil
	}
	return KindList, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// New returns an empty Frontier of the given kind ordered by est.
func New(kind Kind, est Estimator) Frontier {
	if kind == KindHeap {
		return NewHeap(est)
	}
	return NewList(est)
}
