// Package scenario loads board layouts for the search engine from YAML files.
//
// A scenario describes a board in one of two forms:
//
//	# explicit form: N×N board, walls and endpoints as [row, col] pairs
//	name: corridor
//	size: 8
//	start: [0, 0]
//	end: [7, 7]
//	walls: [[1, 1], [1, 2], [1, 3]]
//
//	# map form: one text row per board row
//	name: gap
//	map: |
//	  S...
//	  ##.#
//	  E...
//
// In the map form '.' is free, '#' is a wall, 'S' the start and 'E' the end.
// Spaces inside a row are ignored, so "S . . #" is the same as "S..#".
//
// Build turns a validated Scenario into a grid with adjacency computed and
// returns the endpoints. Watcher re-runs a callback whenever the scenario
// file changes on disk, so a layout can be edited and re-searched live.
//
// Errors:
//
//   - ErrInvalid:           struct validation failed (size, pair lengths, negative coords).
//   - ErrNoBoard:           neither size nor map is set.
//   - ErrBoardConflict:     both size and map are set.
//   - ErrNonRectangular:    map rows differ in length.
//   - ErrBadRune:           map holds a character other than . # S E.
//   - ErrMissingEndpoint:   no start or no end.
//   - ErrDuplicateEndpoint: more than one S or E in a map.
package scenario
