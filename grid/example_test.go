package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// ExampleGrid_ComputeNeighbors paints a short wall and lists the
// adjacency of the cell next to it.
//
//	. . .
//	. . #
//	. # .
func ExampleGrid_ComputeNeighbors() {
	g, _ := grid.New(3)
	_ = g.SetBlocked(grid.Position{Row: 1, Col: 2}, true)
	_ = g.SetBlocked(grid.Position{Row: 2, Col: 1}, true)
	g.ComputeNeighbors()

	nbrs, _ := g.Neighbors(grid.Position{Row: 1, Col: 1})
	fmt.Println(nbrs)
	// Output:
	// [(0,1) (1,0)]
}
