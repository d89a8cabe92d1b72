// Package mapgen builds random obstacle maps for the search engine.
//
// What
//
//   - A square grid with a Wall border and interior cells walled independently
//     with probability WallProbability.
//   - A start and a goal drawn uniformly from the interior (the whole board
//     for sizes below 3) and forced to Air.
//   - Optionally, regenerate from derived seeds until the goal is reachable.
//   - StyleMaze instead carves a perfect maze with a randomized depth-first
//     walk; start and goal sit on rooms (odd coordinates) and are always
//     connected.
//
// Determinism
//
//	Generation draws from a single math/rand stream seeded by Config.Seed, in a
//	fixed order: start x, start y, goal x, goal y, then one Float64 per interior
//	cell (column-major). The same Config always yields the same Map.
//	Retries use SplitMix64-derived seeds so attempt k is reproducible on its own.
//
// Errors
//
//   - ErrBadSize        size < 1.
//   - ErrBadProbability WallProbability outside [0, 1] or NaN.
//   - ErrBadAttempts    MaxAttempts < 1.
//   - ErrUnreachable    RequireReachable and every attempt left the goal cut off.
package mapgen
