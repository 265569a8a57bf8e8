package grid

import "fmt"

// State classifies a cell for both editing and visualization.
type State uint8

const (
	// Empty is a free, untouched cell.
	Empty State = iota
	// Blocked is an obstacle; it never appears in any adjacency list.
	Blocked
	// Start marks the search origin.
	Start
	// End marks the search target.
	End
	// Frontier marks a cell discovered by a search but not yet expanded.
	Frontier
	// Visited marks a cell whose neighbors a search has already relaxed.
	Visited
	// Path marks a cell on a reconstructed shortest path.
	Path
)

var stateNames = [...]string{"Empty", "Blocked", "Start", "End", "Frontier", "Visited", "Path"}

// stateRunes is the single-character form used by text maps.
var stateRunes = [...]rune{'.', '#', 'S', 'E', '+', 'o', '*'}

// String returns the state name.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", s)
}

// Rune returns the character used for s in text maps.
func (s State) Rune() rune {
	if int(s) < len(stateRunes) {
		return stateRunes[s]
	}
	return '?'
}

// StateFromRune is the inverse of Rune.
func StateFromRune(r rune) (State, bool) {
	for i, sr := range stateRunes {
		if sr == r {
			return State(i), true
		}
	}
	return Empty, false
}

// Endpoint reports whether s is Start or End.
func (s State) Endpoint() bool { return s == Start || s == End }

// Position addresses a cell by row and column.
type Position struct {
	Row, Col int
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell is a single grid square. Neighbors is a lookup list produced by the
// last ComputeNeighbors call and does not own the referenced cells.
type Cell struct {
	Pos       Position
	State     State
	neighbors []Position
}

// Neighbors returns the adjacency recorded for c.
func (c Cell) Neighbors() []Position { return c.neighbors }
