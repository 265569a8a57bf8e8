// Package render draws grid snapshots as plain text or as colored terminal
// blocks. It works on the [][]grid.State returned by grid.Grid.States, so a
// frame can be drawn while a search keeps writing to the live grid.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/grid"
)

// Text renders one character per cell (see grid.State.Rune), cells separated
// by a space and rows terminated by a newline.
func Text(states [][]grid.State) string {
	var b strings.Builder
	for _, row := range states {
		for c, s := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(s.Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Palette maps each state to a background color.
type Palette map[grid.State]lipgloss.Color

// DefaultPalette follows the classic visualizer scheme: white free cells,
// black walls, blue start, orange end, green frontier, red visited and an
// indigo path.
func DefaultPalette() Palette {
	return Palette{
		grid.Empty:    lipgloss.Color("#FFFFFF"),
		grid.Blocked:  lipgloss.Color("#000000"),
		grid.Start:    lipgloss.Color("#0000FF"),
		grid.End:      lipgloss.Color("#FFA500"),
		grid.Frontier: lipgloss.Color("#00FF00"),
		grid.Visited:  lipgloss.Color("#FF0000"),
		grid.Path:     lipgloss.Color("#4B0082"),
	}
}

// Styled renders each cell as a two-column colored block. When cursor is
// non-nil, that cell shows a marker so an editor can point at it.
func Styled(states [][]grid.State, p Palette, cursor *grid.Position) string {
	if p == nil {
		p = DefaultPalette()
	}
	styles := make(map[grid.State]lipgloss.Style, len(p))
	for s, color := range p {
		styles[s] = lipgloss.NewStyle().Background(color).Foreground(lipgloss.Color("#808080"))
	}

	var b strings.Builder
	for r, row := range states {
		for c, s := range row {
			block := "  "
			if cursor != nil && cursor.Row == r && cursor.Col == c {
				block = "[]"
			}
			b.WriteString(styles[s].Render(block))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
