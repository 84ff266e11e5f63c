package tui

import "github.com/mmcdole/popcorn/internal/tui/components"

// Layout proportions
const (
	LeftBoxPercent = 50
	MinBoxWidth    = 24

	// Nav bar on top, status line at the bottom
	NavHeight    = 1
	FooterHeight = 1
	ChromeHeight = NavHeight + FooterHeight

	// Summary title, stats line and a blank line above the watched rows
	SummaryHeight = 3
)

// boxLayout holds calculated widths for the two panels
type boxLayout struct {
	leftWidth  int
	rightWidth int
	height     int
}

// calculateLayout splits the screen between the results and the right panel
func (m Model) calculateLayout() boxLayout {
	left := max(m.Width*LeftBoxPercent/100, MinBoxWidth)
	right := max(m.Width-left, MinBoxWidth)
	return boxLayout{
		leftWidth:  left,
		rightWidth: right,
		height:     max(m.Height-ChromeHeight, components.BorderHeight+components.BoxHeaderLines+1),
	}
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	layout := m.calculateLayout()
	m.LeftBox.SetSize(layout.leftWidth, layout.height)
	m.RightBox.SetSize(layout.rightWidth, layout.height)

	lw, lh := m.LeftBox.ContentSize()
	m.Results.SetSize(lw, lh)

	rw, rh := m.RightBox.ContentSize()
	m.Detail.SetSize(rw, rh)
	m.Summary.SetWidth(rw)
	m.WatchedList.SetSize(rw, max(rh-SummaryHeight, 1))

	// First content cell of the right box: border and padding, then the box header
	m.Detail.SetOrigin(
		layout.leftWidth+1+1,
		NavHeight+1+components.BoxHeaderLines,
	)

	m.SearchBar.SetWidth(m.Width / 3)
}
