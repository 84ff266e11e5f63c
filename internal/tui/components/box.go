package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/popcorn/internal/tui/styles"
)

// Layout constants for boxes
const (
	// Border adds 1 char on each side (left+right for width, top+bottom for height)
	BorderWidth  = 2
	BorderHeight = 2

	// Title line plus blank line under it
	BoxHeaderLines = 2
)

// Box is a bordered, collapsible panel. Its open flag is private to the box.
type Box struct {
	title  string
	open   bool
	width  int
	height int
}

// NewBox creates an open box
func NewBox(title string) Box {
	return Box{title: title, open: true}
}

// Toggle flips between open and collapsed
func (b *Box) Toggle() {
	b.open = !b.open
}

// IsOpen returns true if the box shows its content
func (b Box) IsOpen() bool {
	return b.open
}

// SetTitle replaces the header text
func (b *Box) SetTitle(title string) {
	b.title = title
}

// SetSize updates the outer dimensions
func (b *Box) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// ContentSize returns the space available to the box's content
func (b Box) ContentSize() (int, int) {
	return max(b.width-BorderWidth-2, 1), max(b.height-BorderHeight-BoxHeaderLines, 1)
}

// View renders content inside the border, or just the header when collapsed
func (b Box) View(content string, focused bool) string {
	style := styles.InactiveBorder
	if focused {
		style = styles.ActiveBorder
	}

	innerWidth := max(b.width-BorderWidth-2, 1)
	toggle := "[–]"
	if !b.open {
		toggle = "[+]"
	}
	titleWidth := innerWidth - lipgloss.Width(toggle) - 1
	header := styles.AccentStyle.Render(styles.Pad(styles.Truncate(b.title, titleWidth), titleWidth)) +
		" " + styles.DimStyle.Render(toggle)

	body := header
	if b.open {
		_, innerHeight := b.ContentSize()
		lines := strings.Split(content, "\n")
		if len(lines) > innerHeight {
			lines = lines[:innerHeight]
		}
		body = header + "\n\n" + strings.Join(lines, "\n")
	}

	return style.
		Width(max(b.width-BorderWidth, 1)).
		Height(max(b.height-BorderHeight, 1)).
		Padding(0, 1).
		Render(body)
}
