package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// BenchmarkRun measures corner-to-corner searches on a 200×200 grid with
// about 20% walls. The grid is cleared between iterations.
// Complexity: O(V log V)
func BenchmarkRun(b *testing.B) {
	const n = 200
	rng := rand.New(rand.NewSource(42))
	g, err := grid.New(n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if rng.Intn(5) == 0 {
				_ = g.SetBlocked(grid.Position{Row: r, Col: c}, true)
			}
		}
	}
	start, end := grid.Position{Row: 0, Col: 0}, grid.Position{Row: n - 1, Col: n - 1}
	_ = g.SetStart(start)
	_ = g.SetEnd(end)
	g.ComputeNeighbors()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ClearSearch()
		if _, err := astar.Run(g, start, end, nil, nil); err != nil {
			b.Fatal(err)
		}
	}
}
