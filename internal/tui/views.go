package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/popcorn/internal/tui/components"
	"github.com/mmcdole/popcorn/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.ShowHelp {
		return m.renderHelp()
	}

	left := m.LeftBox.View(m.Results.View(), m.Focus == PaneResults)
	right := m.RightBox.View(m.renderRight(), m.Focus == PaneRight)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderNav(),
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		m.renderFooter(),
	)
}

// renderNav renders the logo, the search bar and the result count
func (m Model) renderNav() string {
	logo := styles.LogoStyle.Render("🍿 popcorn")
	count := components.CountLabel(len(m.State.Results))
	left := logo + "  " + m.SearchBar.View()
	return spread(left, count, m.Width)
}

// renderRight shows the detail panel for a selection, else the watched list
func (m Model) renderRight() string {
	if m.State.SelectedID != "" {
		return m.Detail.View()
	}
	return m.Summary.View(m.State.Watched) + "\n\n" + m.WatchedList.View()
}

// renderFooter renders the status line with context hints
func (m Model) renderFooter() string {
	var left string
	switch {
	case m.StatusMsg != "" && m.StatusIsErr:
		left = styles.ErrorStyle.Render(m.StatusMsg)
	case m.StatusMsg != "":
		left = styles.SuccessStyle.Render(m.StatusMsg)
	default:
		left = m.renderHints()
	}

	right := styles.HelpKeyStyle.Render("?") + styles.HelpDescStyle.Render(" help")
	return spread(lipgloss.NewStyle().MaxWidth(max(m.Width-8, 1)).Render(left), right, m.Width)
}

// renderHints lists the keys that matter for the focused pane
func (m Model) renderHints() string {
	var pairs [][2]string
	switch {
	case m.Focus == PaneSearch:
		pairs = [][2]string{{"enter", "results"}, {"tab", "next pane"}}
	case m.Focus == PaneResults:
		pairs = [][2]string{{"enter", "details"}, {"f", "search"}, {"[", "collapse"}}
	case m.State.SelectedID != "":
		pairs = [][2]string{{"←/→", "rate"}, {"enter", "confirm"}, {"a", "add"}, {"o", "open"}, {"y", "copy"}, {"esc", "back"}}
	default:
		pairs = [][2]string{{"/", "filter"}, {"x", "remove"}, {"]", "collapse"}}
	}

	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = styles.HelpKeyStyle.Render(p[0]) + " " + styles.HelpDescStyle.Render(p[1])
	}
	return strings.Join(parts, styles.DimStyle.Render(" · "))
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `
SEARCH                          DETAILS
  f          Focus search bar     ←/→ h/l  Preview rating
  enter/esc  Back to results      enter    Commit rating
  tab        Next pane            1-9, 0   Rate 1-10
                                  a        Add to list
RESULTS                           o        Open IMDb page
  j/k        Up/down              y        Copy IMDb link
  g/G        First/last           esc      Back
  enter      Show details
  [          Collapse results   WATCHED
                                  /        Filter
OTHER                             x        Remove
  ?          This help            ]        Collapse panel
  q          Quit

Press esc to return...
`

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(help))
}

// spread places left and right at the edges of a width-wide line
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
