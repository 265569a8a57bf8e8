package grid_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

// TestComputeNeighbors_Order checks the fixed down, up, right, left order
// and the bounds on an interior cell and a corner.
func TestComputeNeighbors_Order(t *testing.T) {
	g, err := grid.New(3)
	require.NoError(t, err)
	g.ComputeNeighbors()

	nbrs, err := g.Neighbors(grid.Position{1, 1})
	require.NoError(t, err)
	require.Equal(t, []grid.Position{{2, 1}, {0, 1}, {1, 2}, {1, 0}}, nbrs)

	nbrs, err = g.Neighbors(grid.Position{0, 0})
	require.NoError(t, err)
	require.Equal(t, []grid.Position{{1, 0}, {0, 1}}, nbrs)

	nbrs, err = g.Neighbors(grid.Position{2, 2})
	require.NoError(t, err)
	require.Equal(t, []grid.Position{{1, 2}, {2, 1}}, nbrs)
}

// TestComputeNeighbors_LeftColumnOnTopRow guards the left-neighbor bound:
// a cell in row 0 must still see its left neighbor.
func TestComputeNeighbors_LeftColumnOnTopRow(t *testing.T) {
	g, err := grid.New(3)
	require.NoError(t, err)
	g.ComputeNeighbors()

	nbrs, err := g.Neighbors(grid.Position{0, 2})
	require.NoError(t, err)
	require.Contains(t, nbrs, grid.Position{0, 1})
}

// TestComputeNeighbors_SkipsBlocked checks walls never appear as neighbors.
func TestComputeNeighbors_SkipsBlocked(t *testing.T) {
	g, err := grid.New(3)
	require.NoError(t, err)
	require.NoError(t, g.SetBlocked(grid.Position{1, 2}, true))
	require.NoError(t, g.SetBlocked(grid.Position{2, 1}, true))
	g.ComputeNeighbors()

	nbrs, err := g.Neighbors(grid.Position{1, 1})
	require.NoError(t, err)
	require.Equal(t, []grid.Position{{0, 1}, {1, 0}}, nbrs)

	c, err := g.Cell(grid.Position{2, 2})
	require.NoError(t, err)
	require.Empty(t, c.Neighbors(), "corner enclosed by walls has no neighbors")
}

// TestComputeNeighbors_Symmetric checks A ∈ N(B) iff B ∈ N(A) for every
// pair of adjacent unblocked cells over many random layouts.
func TestComputeNeighbors_Symmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		rows, cols := 1+rng.Intn(8), 1+rng.Intn(8)
		g, err := grid.NewRect(rows, cols)
		require.NoError(t, err)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if rng.Intn(3) == 0 {
					require.NoError(t, g.SetBlocked(grid.Position{r, c}, true))
				}
			}
		}
		g.ComputeNeighbors()
		states := g.States()

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				a := grid.Position{r, c}
				if states[r][c] == grid.Blocked {
					continue
				}
				na, _ := g.Neighbors(a)
				for _, b := range []grid.Position{{r + 1, c}, {r - 1, c}, {r, c + 1}, {r, c - 1}} {
					if !g.InBounds(b) || states[b.Row][b.Col] == grid.Blocked {
						require.NotContains(t, na, b)
						continue
					}
					nb, _ := g.Neighbors(b)
					require.Equal(t, slices.Contains(na, b), slices.Contains(nb, a),
						"trial %d: asymmetric adjacency between %v and %v", trial, a, b)
					require.Contains(t, na, b)
				}
			}
		}
	}
}

// TestComputeNeighbors_Idempotent checks two consecutive recomputes agree.
func TestComputeNeighbors_Idempotent(t *testing.T) {
	g, err := grid.New(6)
	require.NoError(t, err)
	for _, p := range []grid.Position{{0, 3}, {2, 2}, {4, 1}, {5, 5}} {
		require.NoError(t, g.SetBlocked(p, true))
	}
	g.ComputeNeighbors()
	first := adjacency(t, g)
	g.ComputeNeighbors()
	require.Equal(t, first, adjacency(t, g))
}

// TestNeighbors_ReturnsCopy ensures callers cannot corrupt the cached list.
func TestNeighbors_ReturnsCopy(t *testing.T) {
	g, err := grid.New(2)
	require.NoError(t, err)
	g.ComputeNeighbors()
	nbrs, _ := g.Neighbors(grid.Position{0, 0})
	nbrs[0] = grid.Position{9, 9}
	again, _ := g.Neighbors(grid.Position{0, 0})
	require.NotContains(t, again, grid.Position{9, 9})
}

func adjacency(t *testing.T, g *grid.Grid) map[grid.Position][]grid.Position {
	t.Helper()
	out := make(map[grid.Position][]grid.Position)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			p := grid.Position{r, c}
			nbrs, err := g.Neighbors(p)
			require.NoError(t, err)
			out[p] = nbrs
		}
	}
	return out
}
