package grid

import (
	"fmt"
	"sync"
)

// Grid is a Rows×Cols board of cells stored in row-major order.
// All methods are safe for concurrent use; a search writing states and a
// renderer reading them may run on different goroutines.
type Grid struct {
	mu    sync.RWMutex
	rows  int
	cols  int
	cells []Cell
}

// New builds a size×size grid with every cell Empty.
// Returns ErrEmptyGrid if size < 1.
func New(size int) (*Grid, error) {
	return NewRect(size, size)
}

// NewRect builds a rows×cols grid with every cell Empty.
// Returns ErrEmptyGrid if either dimension is < 1.
// Complexity: O(R×C) time and memory.
func NewRect(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, rows, cols)
	}
	g := &Grid{rows: rows, cols: cols}
	g.cells = freshCells(rows, cols)

	return g, nil
}

func freshCells(rows, cols int) []Cell {
	cells := make([]Cell, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells[r*cols+c] = Cell{Pos: Position{Row: r, Col: c}}
		}
	}
	return cells
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// index maps p to its row-major slot: Row*cols + Col.
func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

func (g *Grid) check(p Position) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v not in %dx%d", ErrOutOfRange, p, g.rows, g.cols)
	}
	return nil
}

// Cell returns a copy of the cell at p, including its adjacency list.
func (g *Grid) Cell(p Position) (Cell, error) {
	if err := g.check(p); err != nil {
		return Cell{}, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	c := g.cells[g.index(p)]
	c.neighbors = append([]Position(nil), c.neighbors...)

	return c, nil
}

// State returns the classification of the cell at p.
func (g *Grid) State(p Position) (State, error) {
	if err := g.check(p); err != nil {
		return Empty, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cells[g.index(p)].State, nil
}

// States returns a snapshot of every cell's state, indexed [row][col].
// Complexity: O(R×C).
func (g *Grid) States() [][]State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([][]State, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]State, g.cols)
		for c := 0; c < g.cols; c++ {
			out[r][c] = g.cells[r*g.cols+c].State
		}
	}
	return out
}

// Mark sets the state of the cell at p unconditionally.
// Editing helpers below are thin wrappers; search engines call Mark directly.
func (g *Grid) Mark(p Position, s State) error {
	if err := g.check(p); err != nil {
		return err
	}
	g.mu.Lock()
	g.cells[g.index(p)].State = s
	g.mu.Unlock()

	return nil
}

// SetBlocked turns the cell at p into an obstacle, or back into an Empty
// cell when blocked is false. Unblocking a cell that is not Blocked is a no-op.
func (g *Grid) SetBlocked(p Position, blocked bool) error {
	if err := g.check(p); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	c := &g.cells[g.index(p)]
	switch {
	case blocked:
		c.State = Blocked
	case c.State == Blocked:
		c.State = Empty
	}
	return nil
}

// SetStart marks p as the search origin. The caller keeps at most one Start.
func (g *Grid) SetStart(p Position) error { return g.Mark(p, Start) }

// SetEnd marks p as the search target. The caller keeps at most one End.
func (g *Grid) SetEnd(p Position) error { return g.Mark(p, End) }

// Clear resets the cell at p to Empty. If it held Start or End the caller
// must drop its own reference to that endpoint.
func (g *Grid) Clear(p Position) error { return g.Mark(p, Empty) }

// Reset returns every cell to Empty and drops all adjacency, keeping the size.
func (g *Grid) Reset() {
	g.mu.Lock()
	g.cells = freshCells(g.rows, g.cols)
	g.mu.Unlock()
}

// ClearSearch turns Frontier, Visited and Path cells back into Empty while
// keeping walls and endpoints, so the same layout can be searched again.
func (g *Grid) ClearSearch() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.cells {
		switch g.cells[i].State {
		case Frontier, Visited, Path:
			g.cells[i].State = Empty
		}
	}
}

// Endpoints scans the grid for the first Start and End cells in row-major order.
// Complexity: O(R×C).
func (g *Grid) Endpoints() (start, end Position, hasStart, hasEnd bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, c := range g.cells {
		switch {
		case c.State == Start && !hasStart:
			start, hasStart = c.Pos, true
		case c.State == End && !hasEnd:
			end, hasEnd = c.Pos, true
		}
	}
	return start, end, hasStart, hasEnd
}
