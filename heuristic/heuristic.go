// Package heuristic provides A* remaining-cost estimates for grid moves whose
// step cost is |dx|+|dy|.
//
//   - Manhattan:        |dx|+|dy|. Admissible and consistent for Conn4 and Conn8
//     under these step costs. The default; searches using it return shortest paths.
//   - Chebyshev:        max(|dx|,|dy|). Admissible, weaker than Manhattan here.
//   - Euclidean:        ⌊√(dx²+dy²)⌋. Admissible and consistent; between the two above.
//   - Zero:             0. Turns A* into Dijkstra.
//   - SquaredEuclidean: dx²+dy². NOT admissible: it overestimates straight-line
//     moves, so the search is greedier and may return a longer path.
package heuristic

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/gridstar/grid"
)

// ErrUnknown is returned by ByName for an unregistered heuristic.
var ErrUnknown = errors.New("heuristic: unknown name")

// Func estimates the remaining cost from one cell to another.
type Func func(from, to grid.Pos) int

// Manhattan returns |dx|+|dy|.
func Manhattan(from, to grid.Pos) int {
	return abs(from.X-to.X) + abs(from.Y-to.Y)
}

// Chebyshev returns max(|dx|,|dy|).
func Chebyshev(from, to grid.Pos) int {
	dx, dy := abs(from.X-to.X), abs(from.Y-to.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Euclidean returns the straight-line distance rounded down.
func Euclidean(from, to grid.Pos) int {
	d := planar.Distance(point(from), point(to))
	return int(math.Floor(d))
}

func point(p grid.Pos) orb.Point {
	return orb.Point{float64(p.X), float64(p.Y)}
}

// Zero always returns 0.
func Zero(_, _ grid.Pos) int { return 0 }

// SquaredEuclidean returns dx²+dy². Inadmissible.
func SquaredEuclidean(from, to grid.Pos) int {
	dx, dy := from.X-to.X, from.Y-to.Y
	return dx*dx + dy*dy
}

type entry struct {
	fn         Func
	admissible bool
}

var registry = map[string]entry{
	"manhattan":         {Manhattan, true},
	"chebyshev":         {Chebyshev, true},
	"euclidean":         {Euclidean, true},
	"zero":              {Zero, true},
	"squared-euclidean": {SquaredEuclidean, false},
}

// ByName looks up a heuristic by its lowercase name.
func ByName(name string) (Func, error) {
	e, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknown, name, strings.Join(Names(), ", "))
	}
	return e.fn, nil
}

// Admissible reports whether the named heuristic never overestimates, which
// is what makes the returned path a shortest one. Unknown names report false.
func Admissible(name string) bool {
	return registry[strings.ToLower(strings.TrimSpace(name))].admissible
}

// Names lists registered heuristics in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
