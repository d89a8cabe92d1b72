package search

import "github.com/katalvlaran/gridstar/grid"

// reconstruct walks parent links from the goal node to the start. Every
// ancestor except the start is marked Path; the goal itself is not marked.
// Steps counts the ancestors walked, which is the number of moves.
func (e *Engine) reconstruct(goalNode, cost int) {
	path := []grid.Pos{e.nodes[goalNode].pos}
	for i := e.nodes[goalNode].parent; i >= 0; i = e.nodes[i].parent {
		n := e.nodes[i]
		if n.parent >= 0 {
			e.grid.SetState(n.pos, grid.Path)
		}
		path = append(path, n.pos)
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for _, p := range path {
		e.path.Put(p)
	}

	e.result.Path = path
	e.result.Steps = len(path) - 1
	e.result.Cost = cost
}
