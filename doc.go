// Package gridpath is a grid pathfinding playground: paint walls on a board,
// drop a start and an end, and watch A* find the shortest 4-connected route
// between them, one expansion at a time.
//
// 🚀 What is gridpath?
//
//	A small, thread-safe toolkit that brings together:
//		• Grid model: cells, states and 4-neighbor adjacency under an RW lock
//		• Frontier: a generic min-priority queue with a stable tie-break
//		• A* search: Manhattan heuristic, step and cancel hooks, lazy decrease-key
//		• Scenarios: YAML boards (explicit or drawn as a map), hot reload
//		• Rendering: plain text or colored terminal blocks
//		• Telemetry: slog loggers and prometheus metrics per run
//		• TUI: an interactive board editor built on bubbletea
//
// ✨ Why hooks?
//
//   - onStep fires after every expansion and every path step, so a caller
//     can pause, redraw or count without the engine knowing about frames.
//   - isCanceled is polled before every pop; a canceled run keeps its
//     painted states and reports Canceled instead of an error.
//
// Under the hood, everything is organized under these subpackages:
//
//	grid/      : Grid, Cell, State, Position & neighbor computation
//	frontier/  : Queue[T]: PopMin by (priority, insertion order)
//	astar/     : Run, Reconstruct, Result, Status & functional options
//	scenario/  : Load/Parse/Build YAML boards, Random boards, file Watcher
//	render/    : Text and Styled board drawing
//	telemetry/ : NewLogger and prometheus Metrics
//	tui/       : interactive editor Model
//	cmd/gridpath : the command-line front end (run, edit, version)
//
// Quick ASCII example (S start, E end, # wall, * path):
//
//	S * *
//	# # *
//	E * *
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
