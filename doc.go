// Package gridstar is an A* playground on square obstacle grids: generate a
// random map, search it one expansion at a time, and watch every step.
//
// What is in the box?
//
//	• Grid: walls, search marks, 4- or 8-directional neighbours
//	• Map generation: seeded random walls, start & goal, reachability retries
//	• A* engine: stepwise state machine, node arena, dead-end detection
//	• Frontier: linear scan (reference order) or binary heap (same order)
//	• Visited ledger: non-strict or strict tie policy
//	• Heuristics: Manhattan, Chebyshev, Zero, SquaredEuclidean
//	• Oracles: BFS and Dijkstra for reachability and optimal costs
//	• Rendering: coloured console frames, PNG frames, an ebiten window
//
// Why gridstar?
//
//   - Deterministic – a seed fixes the map; a tie rule fixes the path
//   - Observable – every expansion is a Frame, a log line and a metric
//   - Swappable – heuristic, frontier, policy, renderer and pacer are options
//
// Layout:
//
//	grid/       cells, positions, connectivity, regions
//	mapgen/     random obstacle maps
//	frontier/   open-set implementations
//	ledger/     closed set
//	heuristic/  distance estimates
//	search/     the A* engine and path reconstruction
//	bfs/        breadth-first oracle
//	dijkstra/   weighted oracle
//	render/     Frame, Renderer, console/ and pngframe/
//	pacing/     delays between frames
//	metrics/    Prometheus collectors
//	config/     YAML configuration
//	cmd/        gridstar (terminal) and gridstar-view (window)
//
// Quick ASCII example (P start, G goal, * path):
//
//	# # # # #
//	# P * * #
//	# . . * #
//	# . . G #
//	# # # # #
//
//	go run github.com/katalvlaran/gridstar/cmd/gridstar -size 32 -seed 7
package gridstar
