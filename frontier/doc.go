// Package frontier implements the A* open set: discovered cells waiting to be
// expanded, each with the accumulated path cost g of its best known route.
//
// What
//
//   - List: the reference behaviour. ExtractMin scans every entry and removes the
//     one with the lowest g + h; ties go to the entry inserted first.
//   - Heap: the same ordering kept in a binary heap keyed by (g + h, seq), where
//     seq is a monotonically increasing insertion counter.
//   - At most one entry per coordinate. Replace swaps in a cheaper route and
//     gives the entry a fresh insertion sequence, exactly as removing the old
//     entry and pushing a new one would.
//
// Why
//
//	The tie-break decides path shape when several routes cost the same. Both
//	implementations extract entries in the same order for the same estimator,
//	so a search is reproducible whichever one is chosen.
//
// Complexity (F = entries)
//
//   - List: Push O(1), ExtractMin O(F), Find O(F), Replace O(F).
//   - Heap: Push O(log F), ExtractMin O(log F), Find O(1), Replace O(log F).
//
// Errors
//
//   - ErrUnknownKind: Parse got a name other than "list" or "heap".
package frontier
