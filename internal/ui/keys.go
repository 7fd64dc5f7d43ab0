package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines every keyboard shortcut the Controller recognizes.
type KeyMap struct {
	Up, Down           key.Binding
	Left, Right        key.Binding
	Home, End          key.Binding
	PageUp, PageDown   key.Binding
	Enter              key.Binding
	Back               key.Binding
	Refresh            key.Binding
	Quit               key.Binding
	Help               key.Binding
	Debug              key.Binding
	Theme              key.Binding
	OpenUrl            key.Binding
	OpenHnPage         key.Binding
	CopyUrl            key.Binding
	ToggleFavorite     key.Binding
	NextFeed, PrevFeed key.Binding
	ExpandSubtree      key.Binding
	CollapseSubtree    key.Binding
	ExpandAll          key.Binding
	CollapseAll        key.Binding
}

// DefaultKeyMap returns hntui's default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Collapse / back"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Expand / open"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "First"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "Last"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+b"),
			key.WithHelp("PgUp", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+f"),
			key.WithHelp("PgDn", "Page down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("⏎", "Open comments"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "Back"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Help"),
		),
		Debug: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Debug panel"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Cycle theme"),
		),
		OpenUrl: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Open link"),
		),
		OpenHnPage: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "Open on HN"),
		),
		CopyUrl: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy URL"),
		),
		ToggleFavorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Favorite"),
		),
		NextFeed: key.NewBinding(
			key.WithKeys("]", "tab"),
			key.WithHelp("]", "Next feed"),
		),
		PrevFeed: key.NewBinding(
			key.WithKeys("[", "shift+tab"),
			key.WithHelp("[", "Prev feed"),
		),
		ExpandSubtree: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "Expand subtree"),
		),
		CollapseSubtree: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "Collapse subtree"),
		),
		ExpandAll: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "Expand all"),
		),
		CollapseAll: key.NewBinding(
			key.WithKeys("Z"),
			key.WithHelp("Z", "Collapse all"),
		),
	}
}
