package grid

import (
	"fmt"
	"strings"
)

// New builds a size×size grid of Air cells surrounded by a Wall border.
// Returns ErrBadSize if size < 1.
// Complexity: O(N²) time and memory.
func New(size int, opts ...Option) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	g := newGrid(size, opts)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if x == 0 || y == 0 || x == size-1 || y == size-1 {
				g.cells[g.index(Pos{x, y})] = Wall
			}
		}
	}

	return g, nil
}

// Parse builds a grid from text rows where '#' is Wall and '.' is Air.
// Rows are taken verbatim; no border is added.
func Parse(rows []string, opts ...Option) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadSize)
	}
	n := len(rows)
	g := newGrid(n, opts)
	for y, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, y, len(row), n)
		}
		for x, ch := range row {
			switch ch {
			case '#':
				g.cells[g.index(Pos{x, y})] = Wall
			case '.':
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadGlyph, ch, x, y)
			}
		}
	}

	return g, nil
}

func newGrid(size int, opts []Option) *Grid {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	offsets := offsets4
	if o.Conn == Conn8 {
		offsets = offsets8
	}

	return &Grid{
		size:    size,
		cells:   make([]CellState, size*size),
		conn:    o.Conn,
		offsets: offsets,
	}
}

// Size returns the side length N.
func (g *Grid) Size() int { return g.size }

// Connectivity returns the neighbour connectivity.
func (g *Grid) Connectivity() Connectivity { return g.conn }

// Offsets returns the neighbour offsets in expansion order.
// The slice is shared; callers must not modify it.
func (g *Grid) Offsets() []Offset { return g.offsets }

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < g.size && p.Y >= 0 && p.Y < g.size
}

// IsPassable reports whether p is in bounds and not a Wall.
func (g *Grid) IsPassable(p Pos) bool {
	return g.InBounds(p) && g.cells[g.index(p)] != Wall
}

// State returns the state of p. p must be in bounds.
func (g *Grid) State(p Pos) CellState {
	return g.cells[g.index(p)]
}

// SetState overwrites the search mark of p. p must be in bounds.
// Walls are immutable: writing onto a Wall, or writing Wall, is ignored.
func (g *Grid) SetState(p Pos, s CellState) {
	i := g.index(p)
	if s == Wall || g.cells[i] == Wall {
		return
	}
	g.cells[i] = s
}

// SetWall places or clears a wall at p while a map is being built.
// p must be in bounds.
func (g *Grid) SetWall(p Pos, wall bool) {
	if wall {
		g.cells[g.index(p)] = Wall
		return
	}
	g.cells[g.index(p)] = Air
}

// Snapshot returns a deep copy of g.
func (g *Grid) Snapshot() *Grid {
	c := *g
	c.cells = make([]CellState, len(g.cells))
	copy(c.cells, g.cells)

	return &c
}

// Reset returns every non-wall cell to Air.
func (g *Grid) Reset() {
	for i, s := range g.cells {
		if s != Wall {
			g.cells[i] = Air
		}
	}
}

// Count returns how many cells are in state s.
func (g *Grid) Count(s CellState) int {
	n := 0
	for _, c := range g.cells {
		if c == s {
			n++
		}
	}
	return n
}

// String dumps the grid, one row per line: '#' wall, '.' air,
// 'o' frontier, 'x' expanded, 'd' dead end, '*' path.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.size * (g.size + 1))
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			b.WriteByte(glyph(g.cells[g.index(Pos{x, y})]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func glyph(s CellState) byte {
	switch s {
	case Wall:
		return '#'
	case Frontier:
		return 'o'
	case Expanded:
		return 'x'
	case DeadEnd:
		return 'd'
	case Path:
		return '*'
	default:
		return '.'
	}
}

// index maps p to a row-major index: y*N + x.
func (g *Grid) index(p Pos) int {
	return p.Y*g.size + p.X
}

// Coordinate converts a row-major index back to a Pos.
func (g *Grid) Coordinate(idx int) Pos {
	return Pos{X: idx % g.size, Y: idx / g.size}
}
