package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every binding the editor understands.
type keyMap struct {
	Up, Down, Left, Right key.Binding
	Start, End, Wall      key.Binding
	Erase                 key.Binding
	Run, Cancel, Reset    key.Binding
	Help, Quit            key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Start:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "set start")),
		End:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "set end")),
		Wall:   key.NewBinding(key.WithKeys("w", "enter"), key.WithHelp("w", "toggle wall")),
		Erase:  key.NewBinding(key.WithKeys("x", "backspace"), key.WithHelp("x", "clear cell")),
		Run:    key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "search")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "stop search")),
		Reset:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "reset board")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.End, k.Wall, k.Run, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Start, k.End, k.Wall, k.Erase},
		{k.Run, k.Cancel, k.Reset},
		{k.Help, k.Quit},
	}
}
