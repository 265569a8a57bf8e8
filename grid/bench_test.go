package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

// BenchmarkComputeNeighbors measures a full adjacency rebuild on a
// 500×500 grid with roughly 25% walls.
// Complexity: O(R×C×4)
func BenchmarkComputeNeighbors(b *testing.B) {
	const n = 500
	rng := rand.New(rand.NewSource(42))
	g, err := grid.New(n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if rng.Intn(4) == 0 {
				_ = g.SetBlocked(grid.Position{Row: r, Col: c}, true)
			}
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ComputeNeighbors()
	}
}
