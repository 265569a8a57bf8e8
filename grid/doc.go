// Package grid models a rectangular board of classified cells and the
// 4-directional adjacency derived from its obstacle layout.
//
// What:
//
//   - Grid owns Rows×Cols cells, each carrying a State (Empty, Blocked,
//     Start, End, Frontier, Visited, Path) and a cached neighbor list.
//   - Editing operations paint walls and endpoints the way an interactive
//     board editor does: SetBlocked, SetStart, SetEnd, Clear, Reset.
//   - ComputeNeighbors rebuilds every cell's adjacency from the current
//     obstacle layout. It is not incremental: call it after every edit.
//
// Why:
//
//   - Search engines (see package astar) read adjacency only, so the graph
//     is rebuilt once per run instead of being checked on every expansion.
//   - Renderers read States() concurrently with a running search; the grid
//     guards its cells with a sync.RWMutex.
//
// Adjacency rule:
//
//	A cell at (r,c) lists, in this order, (r+1,c), (r-1,c), (r,c+1), (r,c-1)
//	when the target lies inside the grid and is not Blocked. The rule is
//	symmetric: for two in-bounds unblocked neighbors A and B,
//	A ∈ Neighbors(B) iff B ∈ Neighbors(A).
//
// Complexity:
//
//   - New, NewRect, Reset:  O(R×C) time and memory.
//   - ComputeNeighbors:     O(R×C×4).
//   - Editing, accessors:   O(1), except States and Endpoints which are O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid:  non-positive dimensions.
//   - ErrOutOfRange: a Position outside the grid.
package grid
