package scenario

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/gridpath/grid"
)

// Random builds a size×size board with the start in the top-left corner, the
// end in the bottom-right corner and each other cell blocked with probability
// density. The same seed always yields the same board. Adjacency is computed.
func Random(size int, density float64, seed uint64) (g *grid.Grid, start, end grid.Position, err error) {
	if density < 0 || density >= 1 {
		return nil, start, end, fmt.Errorf("%w: density %.2f not in [0,1)", ErrInvalid, density)
	}
	if g, err = grid.New(size); err != nil {
		return nil, start, end, err
	}
	start = grid.Position{Row: 0, Col: 0}
	end = grid.Position{Row: size - 1, Col: size - 1}
	if start == end {
		return nil, start, end, fmt.Errorf("%w: size %d leaves no room for two endpoints", ErrInvalid, size)
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			p := grid.Position{Row: r, Col: c}
			if p == start || p == end {
				continue
			}
			if rng.Float64() < density {
				_ = g.SetBlocked(p, true)
			}
		}
	}
	_ = g.SetStart(start)
	_ = g.SetEnd(end)
	g.ComputeNeighbors()

	return g, start, end, nil
}
