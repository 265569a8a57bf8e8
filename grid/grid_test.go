package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// Construction and bounds
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that non-positive dimensions are rejected.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 3},
		{"ZeroCols", 3, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.NewRect(tc.rows, tc.cols)
			if !errors.Is(err, grid.ErrEmptyGrid) {
				t.Errorf("NewRect(%d,%d) error = %v; want %v", tc.rows, tc.cols, err, grid.ErrEmptyGrid)
			}
		})
	}
}

// TestNew_AllEmpty checks a fresh N×N grid has only Empty cells.
func TestNew_AllEmpty(t *testing.T) {
	g, err := grid.New(5)
	require.NoError(t, err)
	require.Equal(t, 5, g.Rows())
	require.Equal(t, 5, g.Cols())
	for _, row := range g.States() {
		for _, s := range row {
			require.Equal(t, grid.Empty, s)
		}
	}
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.NewRect(2, 3)
	require.NoError(t, err)

	for _, p := range []grid.Position{{0, 0}, {1, 2}, {1, 1}} {
		assert.True(t, g.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []grid.Position{{-1, 0}, {2, 0}, {0, 3}, {1, -1}} {
		assert.False(t, g.InBounds(p), "InBounds(%v)", p)
	}
}

// TestOutOfRange ensures every editing and accessor call fails fast.
func TestOutOfRange(t *testing.T) {
	g, err := grid.New(3)
	require.NoError(t, err)
	p := grid.Position{Row: 3, Col: 0}

	require.ErrorIs(t, g.SetBlocked(p, true), grid.ErrOutOfRange)
	require.ErrorIs(t, g.SetStart(p), grid.ErrOutOfRange)
	require.ErrorIs(t, g.SetEnd(p), grid.ErrOutOfRange)
	require.ErrorIs(t, g.Clear(p), grid.ErrOutOfRange)
	_, err = g.State(p)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = g.Cell(p)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = g.Neighbors(p)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
}

//----------------------------------------------------------------------------//
// Editing
//----------------------------------------------------------------------------//

func TestEditing(t *testing.T) {
	g, err := grid.New(4)
	require.NoError(t, err)
	a, b, w := grid.Position{0, 0}, grid.Position{3, 3}, grid.Position{1, 2}

	require.NoError(t, g.SetStart(a))
	require.NoError(t, g.SetEnd(b))
	require.NoError(t, g.SetBlocked(w, true))

	s, _ := g.State(w)
	require.Equal(t, grid.Blocked, s)

	start, end, hasStart, hasEnd := g.Endpoints()
	require.True(t, hasStart)
	require.True(t, hasEnd)
	require.Equal(t, a, start)
	require.Equal(t, b, end)

	// Unblocking a non-wall keeps its state.
	require.NoError(t, g.SetBlocked(a, false))
	s, _ = g.State(a)
	require.Equal(t, grid.Start, s)

	require.NoError(t, g.SetBlocked(w, false))
	s, _ = g.State(w)
	require.Equal(t, grid.Empty, s)

	require.NoError(t, g.Clear(a))
	_, _, hasStart, _ = g.Endpoints()
	require.False(t, hasStart)
}

func TestReset(t *testing.T) {
	g, err := grid.New(3)
	require.NoError(t, err)
	require.NoError(t, g.SetBlocked(grid.Position{1, 1}, true))
	require.NoError(t, g.SetStart(grid.Position{0, 0}))
	g.ComputeNeighbors()

	g.Reset()
	require.Equal(t, 3, g.Rows())
	for _, row := range g.States() {
		for _, s := range row {
			require.Equal(t, grid.Empty, s)
		}
	}
	nbrs, err := g.Neighbors(grid.Position{0, 0})
	require.NoError(t, err)
	require.Nil(t, nbrs, "Reset must drop adjacency")
}

func TestClearSearch(t *testing.T) {
	g, err := grid.New(2)
	require.NoError(t, err)
	require.NoError(t, g.SetStart(grid.Position{0, 0}))
	require.NoError(t, g.Mark(grid.Position{0, 1}, grid.Path))
	require.NoError(t, g.Mark(grid.Position{1, 0}, grid.Visited))
	require.NoError(t, g.SetBlocked(grid.Position{1, 1}, true))

	g.ClearSearch()
	require.Equal(t, [][]grid.State{
		{grid.Start, grid.Empty},
		{grid.Empty, grid.Blocked},
	}, g.States())
}

func TestStateRunes(t *testing.T) {
	for s := grid.Empty; s <= grid.Path; s++ {
		back, ok := grid.StateFromRune(s.Rune())
		require.True(t, ok, s.String())
		require.Equal(t, s, back)
	}
	_, ok := grid.StateFromRune('x')
	require.False(t, ok)
	require.Equal(t, "State(42)", grid.State(42).String())
}
