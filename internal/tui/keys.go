package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application-wide key bindings.
// Pane-specific bindings live with their components.
type KeyMap struct {
	Quit        key.Binding
	ForceQuit   key.Binding
	Help        key.Binding
	Escape      key.Binding
	Search      key.Binding
	Submit      key.Binding
	NextPane    key.Binding
	PrevPane    key.Binding
	ToggleLeft  key.Binding
	ToggleRight key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/back"),
		),
		Search: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "search"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "go to results"),
		),
		NextPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		PrevPane: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "previous pane"),
		),
		ToggleLeft: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "collapse results"),
		),
		ToggleRight: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "collapse right panel"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
