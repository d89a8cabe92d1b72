package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for grid construction.
var (
	// ErrBadSize indicates a side length smaller than one cell.
	ErrBadSize = errors.New("grid: size must be at least 1")
	// ErrNonSquare indicates Parse input whose rows do not form an N×N square.
	ErrNonSquare = errors.New("grid: rows must form a square")
	// ErrBadGlyph indicates an unknown character in Parse input.
	ErrBadGlyph = errors.New("grid: unknown cell glyph")
	// ErrBadConnectivity indicates an unknown connectivity name.
	ErrBadConnectivity = errors.New("grid: unknown connectivity")
)

// CellState is the logical and visual state of one cell.
type CellState uint8

const (
	// Air is a free, untouched cell.
	Air CellState = iota
	// Wall is an obstacle. Never passable, never overwritten.
	Wall
	// Frontier marks a cell that currently has (or had) an open-set entry.
	Frontier
	// Expanded marks a cell whose node was taken from the frontier and expanded.
	Expanded
	// DeadEnd marks an expanded cell that yielded no new or cheaper neighbour.
	DeadEnd
	// Path marks a cell on the reconstructed route.
	Path
)

var stateNames = [...]string{"air", "wall", "frontier", "expanded", "dead-end", "path"}

// String returns a lowercase name for the state.
func (s CellState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("CellState(%d)", uint8(s))
}

// Pos is a cell coordinate. X is the column, Y the row.
type Pos struct {
	X, Y int
}

// Add returns p moved by o.
func (p Pos) Add(o Offset) Pos {
	return Pos{X: p.X + o.DX, Y: p.Y + o.DY}
}

// String formats the position as "(x,y)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Offset is a single move between neighbouring cells.
type Offset struct {
	DX, DY int
}

// Cost returns the step cost |dx|+|dy|.
func (o Offset) Cost() int {
	return abs(o.DX) + abs(o.DY)
}

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "8"
	}
	return "4"
}

// ParseConnectivity accepts "4", "8", "conn4" or "conn8" (case-insensitive).
func ParseConnectivity(s string) (Connectivity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "4", "conn4":
		return Conn4, nil
	case "8", "conn8":
		return Conn8, nil
	}
	return Conn4, fmt.Errorf("%w: %q", ErrBadConnectivity, s)
}

// Neighbour orders. The order decides which equal-cost frontier entry is
// inserted first, so it is part of the deterministic path shape.
var (
	offsets4 = []Offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	offsets8 = []Offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
)

// Options contains tunable parameters for a Grid.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// Option configures a Grid.
type Option func(*Options)

// DefaultOptions returns Options with Conn4.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// WithConnectivity sets the neighbour connectivity.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// Grid is a square map of cell states. It is not safe for concurrent use;
// the search engine owns it exclusively while running.
type Grid struct {
	size    int
	cells   []CellState
	conn    Connectivity
	offsets []Offset
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
