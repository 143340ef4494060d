package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/Fjolfrin/tbtui/internal/tui/components"
)

// KeyMap holds the viewer's key bindings.
type KeyMap struct {
	ToggleMin key.Binding
	ToggleMax key.Binding
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	PrevTab   key.Binding
	NextTab   key.Binding
	Theme     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ToggleMin: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle min"),
		),
		ToggleMax: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "toggle max"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "select run"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("h", "left", "shift+tab"),
			key.WithHelp("h/←", "previous metric"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("l", "right", "tab"),
			key.WithHelp("l/→/tab", "next metric"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleMin, k.ToggleMax, k.Select, k.NextTab, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleMin, k.ToggleMax, k.Theme},
		{k.Up, k.Down, k.Select},
		{k.PrevTab, k.NextTab},
		{k.Help, k.Quit},
	}
}

// HelpGroups lays out FullHelp for the help overlay.
func (k KeyMap) HelpGroups() []components.ShortcutGroup {
	titles := []string{"Plots", "Runs", "Metrics", "General"}
	full := k.FullHelp()
	groups := make([]components.ShortcutGroup, len(full))
	for i, col := range full {
		groups[i] = components.GroupFromBindings(titles[i], col...)
	}
	return groups
}
