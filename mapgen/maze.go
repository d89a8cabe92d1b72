package mapgen

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/gridstar/grid"
)

// Style selects how walls are laid out.
type Style int

const (
	// StyleRandom walls each interior cell independently.
	StyleRandom Style = iota
	// StyleMaze carves a perfect maze with a randomized depth-first walk.
	StyleMaze
)

// ErrUnknownStyle is returned by ParseStyle for an unknown name.
var ErrUnknownStyle = errors.New("mapgen: unknown style")

// String returns "random" or "maze".
func (s Style) String() string {
	if s == StyleMaze {
		return "maze"
	}
	return "random"
}

// ParseStyle accepts "random" or "maze" (case-insensitive); "" is random.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random", "":
		return StyleRandom, nil
	case "maze":
		return StyleMaze, nil
	}
	return StyleRandom, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}

// mazeSteps are the offsets between neighbouring maze rooms.
var mazeSteps = [4]grid.Offset{{DX: 2}, {DX: -2}, {DY: 2}, {DY: -2}}

// carver holds the state of one maze walk.
type carver struct {
	g       *grid.Grid
	r       *rand.Rand
	visited map[grid.Pos]bool
	stack   []grid.Pos
}

// generateMaze fills the board with walls and carves corridors between rooms
// at odd coordinates. Every room is reachable from every other one, so start
// and goal, both drawn from the rooms, are always connected.
//
// Draw order: start x, start y, goal x, goal y, root x, root y, then one
// permutation of the four directions per visited room.
func generateMaze(cfg Config, seed int64) (*Map, error) {
	g, err := grid.New(cfg.Size, grid.WithConnectivity(cfg.Connectivity))
	if err != nil {
		return nil, err
	}
	r := rand.New(rand.NewSource(seed))
	rooms := (cfg.Size - 1) / 2
	room := func() grid.Pos {
		return grid.Pos{X: 1 + 2*r.Intn(rooms), Y: 1 + 2*r.Intn(rooms)}
	}
	start, goal := room(), room()

	for y := 1; y < cfg.Size-1; y++ {
		for x := 1; x < cfg.Size-1; x++ {
			g.SetWall(grid.Pos{X: x, Y: y}, true)
		}
	}

	c := &carver{g: g, r: r, visited: make(map[grid.Pos]bool, rooms*rooms)}
	c.walk(room())

	return &Map{Grid: g, Start: start, Goal: goal, Seed: seed}, nil
}

// walk carves from root with an explicit stack: open the current room, pick a
// random unvisited neighbour room, knock down the wall between them and
// descend; backtrack when every neighbour is visited.
func (c *carver) walk(root grid.Pos) {
	c.open(root)
	c.stack = append(c.stack, root)
	for len(c.stack) > 0 {
		cur := c.stack[len(c.stack)-1]
		next, ok := c.pick(cur)
		if !ok {
			c.stack = c.stack[:len(c.stack)-1]
			continue
		}
		c.g.SetWall(grid.Pos{X: (cur.X + next.X) / 2, Y: (cur.Y + next.Y) / 2}, false)
		c.open(next)
		c.stack = append(c.stack, next)
	}
}

// pick returns a random unvisited neighbour room of p.
func (c *carver) pick(p grid.Pos) (grid.Pos, bool) {
	for _, i := range c.r.Perm(len(mazeSteps)) {
		n := p.Add(mazeSteps[i])
		if n.X < 1 || n.Y < 1 || n.X > c.g.Size()-2 || n.Y > c.g.Size()-2 {
			continue
		}
		if !c.visited[n] {
			return n, true
		}
	}
	return grid.Pos{}, false
}

func (c *carver) open(p grid.Pos) {
	c.visited[p] = true
	c.g.SetWall(p, false)
}
