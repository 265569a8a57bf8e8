package grid

// neighborOffsets lists the 4-directional moves as (dRow, dCol) in the order
// adjacency is recorded: down, up, right, left.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// ComputeNeighbors recomputes the adjacency list of every cell from the
// current obstacle layout. A neighbor is recorded when it is in bounds and
// not Blocked. Blocked cells still get their own list; nothing reaches them.
//
// The result is only valid until the next edit. Calling it twice without an
// edit in between yields identical lists.
// Complexity: O(R×C×4) time, O(R×C×4) memory.
func (g *Grid) ComputeNeighbors() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.cells {
		p := g.cells[i].Pos
		nbrs := make([]Position, 0, len(neighborOffsets))
		for _, d := range neighborOffsets {
			q := Position{Row: p.Row + d[0], Col: p.Col + d[1]}
			if !g.InBounds(q) || g.cells[g.index(q)].State == Blocked {
				continue
			}
			nbrs = append(nbrs, q)
		}
		g.cells[i].neighbors = nbrs
	}
}

// Neighbors returns a copy of the adjacency recorded for p by the last
// ComputeNeighbors call, or nil if it was never computed.
func (g *Grid) Neighbors(p Position) ([]Position, error) {
	if err := g.check(p); err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	src := g.cells[g.index(p)].neighbors
	if src == nil {
		return nil, nil
	}
	return append(make([]Position, 0, len(src)), src...), nil
}
