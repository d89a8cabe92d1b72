// Package bfs provides breadth-first search over a grid.Grid, returning move
// counts, parent links and visit order from a start cell.
//
// What
//
//   - Explore passable cells in non-decreasing move count from a start cell,
//     using the grid's connectivity and neighbour order.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  map from cell → moves from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - Supports functional hooks (OnEnqueue, OnVisit), neighbour filtering
//     and a MaxDepth limit.
//
// Why
//
//   - Reachability checks for map generation (is the goal in the start's region?).
//   - A brute-force oracle for A*: under Conn4 every move costs 1, so Depth of the
//     goal is the true shortest-path cost.
//
// Determinism
//
//	Neighbours are enqueued in grid.Offsets order, so the visit sequence is fully
//	reproducible.
//
// Complexity (C = passable cells, d = 4 or 8)
//
//   - Time:   O(C·d)
//   - Memory: O(C)
//
// Usage
//
//	res, err := bfs.BFS(g, start, bfs.WithMaxDepth(10))
//	if err != nil {
//	    // ErrGridNil, ErrStartOutOfBounds, ErrStartBlocked, ErrOptionViolation, or a hook error
//	}
//	path, err := res.PathTo(goal)
//
// Errors
//
//   - ErrGridNil           if the grid pointer is nil.
//   - ErrStartOutOfBounds  if start lies outside the grid.
//   - ErrStartBlocked      if start is a wall.
//   - ErrOptionViolation   if an invalid Option is supplied (e.g. negative MaxDepth).
//   - ErrUnreachable       from PathTo when the destination was not reached.
//   - Wrapped hook errors from OnVisit, or the context error on cancellation.
package bfs
