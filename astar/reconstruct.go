package astar

import "github.com/katalvlaran/gridpath/grid"

// Reconstruct walks cameFrom backwards from end, marks every predecessor as
// grid.Path (Start and End keep their markers) and calls onStep once per step.
// The walk stops at the first cell with no predecessor, which is the start of
// a chain produced by Run. It returns the chain ordered from that cell to end.
//
// g may be nil to rebuild the chain without touching any states; onStep may be nil.
// Complexity: O(L) for a chain of L cells.
func Reconstruct(g *grid.Grid, cameFrom map[grid.Position]grid.Position, end grid.Position, onStep func()) []grid.Position {
	if onStep == nil {
		onStep = func() {}
	}
	return reconstruct(g, cameFrom, end, onStep)
}

func reconstruct(g *grid.Grid, cameFrom map[grid.Position]grid.Position, end grid.Position, onStep func()) []grid.Position {
	path := []grid.Position{end}
	for cur := end; ; {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		cur = prev
		path = append(path, cur)
		if g != nil {
			paint(g, cur, grid.Path)
		}
		onStep()
	}
	// reverse into start→end order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
