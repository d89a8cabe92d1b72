// Package ledger implements the A* closed set: cells already expanded, with
// the cost at which they were closed.
//
// A coordinate may be closed more than once when a later route reaches it
// more cheaply (only possible with an inconsistent heuristic or under the
// Strict policy). Blocks compares against the cheapest cost ever recorded,
// which is the same as asking whether any record makes the candidate
// non-improving.
package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridstar/grid"
)

// ErrUnknownPolicy is returned by ParsePolicy for an unknown policy name.
var ErrUnknownPolicy = errors.New("ledger: unknown policy")

// Policy decides how ties between a closed cost and a candidate cost are treated.
type Policy int

const (
	// NonStrict blocks a candidate when a recorded cost is ≤ the candidate.
	NonStrict Policy = iota
	// Strict blocks only when a recorded cost is < the candidate, so an
	// equal-cost route may re-open a closed cell.
	Strict
)

// String returns "non-strict" or "strict".
func (p Policy) String() string {
	if p == Strict {
		return "strict"
	}
	return "non-strict"
}

// ParsePolicy accepts "strict" or "non-strict" (also "nonstrict", case-insensitive).
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "non-strict", "nonstrict", "":
		return NonStrict, nil
	case "strict":
		return Strict, nil
	}
	return NonStrict, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Record is one closing of a cell.
type Record struct {
	Pos  grid.Pos
	Cost int
}

// Ledger is the closed set. The zero value is not usable; call New.
type Ledger struct {
	policy  Policy
	best    map[grid.Pos]int
	records []Record
}

// New returns an empty ledger using policy p.
func New(p Policy) *Ledger {
	return &Ledger{policy: p, best: make(map[grid.Pos]int)}
}

// Policy returns the tie-break policy.
func (l *Ledger) Policy() Policy { return l.policy }

// Record appends a closing of pos at cost.
func (l *Ledger) Record(pos grid.Pos, cost int) {
	l.records = append(l.records, Record{Pos: pos, Cost: cost})
	if prev, ok := l.best[pos]; !ok || cost < prev {
		l.best[pos] = cost
	}
}

// Blocks reports whether pos was already closed at a cost that makes
// candidate non-improving under the ledger's policy.
func (l *Ledger) Blocks(pos grid.Pos, candidate int) bool {
	prev, ok := l.best[pos]
	if !ok {
		return false
	}
	if l.policy == Strict {
		return prev < candidate
	}
	return prev <= candidate
}

// Cost returns the cheapest recorded cost of pos.
func (l *Ledger) Cost(pos grid.Pos) (int, bool) {
	c, ok := l.best[pos]
	return c, ok
}

// Closed reports whether pos has been recorded at least once.
func (l *Ledger) Closed(pos grid.Pos) bool {
	_, ok := l.best[pos]
	return ok
}

// Len returns the number of distinct closed cells.
func (l *Ledger) Len() int { return len(l.best) }

// Records returns the append-only log of closings. The slice is shared.
func (l *Ledger) Records() []Record { return l.records }
