// Package grid holds the square cell-state map that the A* engine searches and
// the renderers draw.
//
// What:
//
//   - Grid is a fixed-size N×N array of CellState, stored row-major.
//   - Border cells are Wall; walls are immutable once the map is built.
//   - Passability, bounds, neighbour offsets (Conn4 or Conn8) and step costs.
//   - Snapshot for handing a frozen copy to renderers; Reset to re-run a search.
//   - Regions / SameRegion for connected passable areas.
//
// Why:
//
//   - The search engine only ever asks "is this in bounds and not a wall?" and
//     "what does this cell look like now?"; everything else is presentation.
//   - Keeping the offsets and step costs on the grid lets the engine, the BFS
//     oracle and the Dijkstra oracle agree on what a move is.
//
// Step costs:
//
//	A move by (dx,dy) costs |dx|+|dy|. Under Conn8 a diagonal therefore costs 2,
//	not √2. Manhattan distance stays admissible and consistent under both
//	connectivities.
//
// Complexity:
//
//   - IsPassable, State, SetState, InBounds: O(1).
//   - Snapshot, Reset, Count, String:        O(N²).
//   - Regions:                               O(N²×d), Memory: O(N²)   (d = 4 or 8).
//
// Errors:
//
//   - ErrBadSize:         side length < 1.
//   - ErrNonSquare:       Parse rows do not form a square.
//   - ErrBadGlyph:        Parse met a character other than '#' or '.'.
//   - ErrBadConnectivity: unknown connectivity name.
package grid
