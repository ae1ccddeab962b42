package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	ForceQuit  key.Binding
	Quit       key.Binding
	Focus      key.Binding // / - focus the search box
	Submit     key.Binding
	Blur       key.Binding
	ToggleView key.Binding // tab - list / scroll view
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding

	// Feed
	Next    key.Binding
	Prev    key.Binding
	Like    key.Binding // l - toggle like
	Love    key.Binding // L - like with burst, never unlikes
	Reviews key.Binding // c - reviews drawer
	Share   key.Binding // s - share link
	Open    key.Binding // o - view details
	Buy     key.Binding
	Cart    key.Binding
	Back    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Focus: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave search box"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "list/scroll view"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "j", "pgdown", " "),
			key.WithHelp("↓/j", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "k", "pgup"),
			key.WithHelp("↑/k", "previous"),
		),
		Like: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "like"),
		),
		Love: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "double-tap like"),
		),
		Reviews: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "reviews"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "share"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "view details"),
		),
		Buy: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "buy now"),
		),
		Cart: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add to cart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}
