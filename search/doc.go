// Package search runs A* over a grid.Grid one expansion at a time and
// reports every step to a renderer.
//
// What
//
//   - Engine owns the grid marks, the open set (frontier) and the closed set
//     (ledger) for one search from a start cell to a goal cell.
//   - Step performs exactly one iteration:
//     1. extract the frontier entry with the lowest g + h; none left ⇒ Exhausted;
//     2. if it is the goal ⇒ GoalReached and the path is reconstructed;
//     3. otherwise close it in the ledger and mark it Expanded;
//     4. expand neighbours in the grid's offset order, skipping walls, cells
//     outside the grid, cells the ledger blocks, and queued cells whose
//     existing cost is not beaten; accepted neighbours are pushed (or
//     replace the queued entry) and marked Frontier;
//     5. a cell that accepted no neighbour is marked DeadEnd;
//     6. the renderer receives a Frame.
//   - Run loops Step, waits on the Pacer between steps, checks the context once
//     per iteration and records metrics, logs and a trace span.
//
// Nodes
//
//	Search nodes live in an arena addressed by index; each stores its parent's
//	index (-1 for the start). Replacing a frontier entry allocates a fresh node,
//	so no two entries share a node and the parent chain is a tree rooted at the
//	start.
//
// Outcomes
//
//	GoalReached and Exhausted are both normal results, not errors. Run returns an
//	error only for renderer failures, an iteration cap, or cancellation.
//
// Optimality
//
//	With heuristic.Manhattan (the default) and |dx|+|dy| step costs the returned
//	path cost is minimal. SquaredEuclidean is inadmissible; its paths are valid
//	but may be longer.
//
// Complexity (C = passable cells)
//
//   - List frontier: O(C²) time worst case, O(C) memory.
//   - Heap frontier: O(C log C) time, O(C) memory.
package search
