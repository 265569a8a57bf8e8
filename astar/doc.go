// Package astar runs a cooperative, cancellable A* search over a grid.Grid
// and reconstructs the resulting shortest path.
//
// Overview:
//
//   - Run expands cells in order of f = g + h, where g is the number of unit
//     steps from the start and h is the Manhattan distance to the end. The
//     heuristic is consistent on a 4-connected unit grid, so the first time
//     the end cell is popped its g is optimal.
//   - Adjacency is read from the grid's last ComputeNeighbors call. The
//     caller must recompute it after editing and must not edit during Run.
//   - Progress is written into the grid as cell states: newly discovered
//     cells become Frontier, expanded cells become Visited, and on success
//     every cell between start and end becomes Path. Start and End markers
//     are never overwritten.
//
// Cooperative stepping:
//
//   - onStep is called once after each expansion and once per step of path
//     reconstruction. It runs synchronously on the caller's goroutine and is
//     the only place a renderer can observe intermediate state.
//   - isCanceled is polled once at the top of every loop iteration. Once it
//     returns true, Run stops with status Canceled within one expansion and
//     leaves every state it has already written in place.
//
// Determinism:
//
//	The frontier breaks priority ties by insertion sequence and neighbors are
//	visited in the grid's fixed order, so two runs over the same layout make
//	identical state changes in identical order.
//
// Outcomes and errors:
//
//   - Found, Unreachable and Canceled are statuses in Result, not errors.
//   - ErrNilGrid:           g is nil.
//   - grid.ErrOutOfRange:   start or end lies outside the grid.
//   - ErrInvalidEndpoints:  start equals end, or either one is Blocked.
//
// Complexity:
//
//   - Time:  O(V log V) on a grid with V cells; each cell is expanded once and
//     pushed at most once per strict improvement.
//   - Space: proportional to the cells actually touched; scores are kept in
//     lazily filled maps where an absent key means +∞.
package astar
