package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
)

func TestText(t *testing.T) {
	states := [][]grid.State{
		{grid.Start, grid.Path, grid.Blocked},
		{grid.Visited, grid.Frontier, grid.End},
	}
	require.Equal(t, "S * #\no + E\n", render.Text(states))
	require.Empty(t, render.Text(nil))
}

func TestStyled_Shape(t *testing.T) {
	states := [][]grid.State{
		{grid.Start, grid.Empty},
		{grid.Empty, grid.End},
	}
	cursor := grid.Position{Row: 1, Col: 0}
	out := render.Styled(states, nil, &cursor)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[1], "[]")
	require.NotContains(t, lines[0], "[]")
}

func TestDefaultPalette_CoversAllStates(t *testing.T) {
	p := render.DefaultPalette()
	for s := grid.Empty; s <= grid.Path; s++ {
		_, ok := p[s]
		require.True(t, ok, s.String())
	}
}
