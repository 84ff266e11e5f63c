package components

import "github.com/charmbracelet/bubbles/key"

// ListKeyMap defines key bindings for the results and watched lists
type ListKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	HalfUp   key.Binding
	HalfDown key.Binding
	Enter    key.Binding
	Delete   key.Binding
	Filter   key.Binding
	Escape   key.Binding
}

// DefaultListKeyMap returns the default list key bindings
func DefaultListKeyMap() ListKeyMap {
	return ListKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "go to top"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "go to bottom"),
		),
		HalfUp: key.NewBinding(
			key.WithKeys("ctrl+u", "pgup"),
			key.WithHelp("C-u", "half page up"),
		),
		HalfDown: key.NewBinding(
			key.WithKeys("ctrl+d", "pgdown"),
			key.WithHelp("C-d", "half page down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "remove"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
	}
}

// RatingKeyMap defines key bindings for the rating input
type RatingKeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Commit key.Binding
	Clear  key.Binding
	Digit  key.Binding
}

// DefaultRatingKeyMap returns the default rating key bindings
func DefaultRatingKeyMap() RatingKeyMap {
	return RatingKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "less"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "more"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "rate"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear preview"),
		),
		Digit: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"),
			key.WithHelp("1-0", "rate directly"),
		),
	}
}

// DetailKeyMap defines key bindings for the movie detail panel
type DetailKeyMap struct {
	Add      key.Binding
	Back     key.Binding
	Open     key.Binding
	Copy     key.Binding
	ScrollUp key.Binding
	ScrollDn key.Binding
}

// DefaultDetailKeyMap returns the default detail panel key bindings
func DefaultDetailKeyMap() DetailKeyMap {
	return DetailKeyMap{
		Add: key.NewBinding(
			key.WithKeys("a", "+"),
			key.WithHelp("a", "add to list"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open IMDb"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy link"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll up"),
		),
		ScrollDn: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll down"),
		),
	}
}
