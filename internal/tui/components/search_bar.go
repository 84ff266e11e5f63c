package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/popcorn/internal/tui/styles"
)

// SearchBar is the query input shown in the nav bar
type SearchBar struct {
	input textinput.Model
	width int
}

// NewSearchBar creates a search bar holding query
func NewSearchBar(query string) SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search movies..."
	ti.CharLimit = 200
	ti.Width = 30
	ti.Prompt = "🔍 "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle
	ti.SetValue(query)

	return SearchBar{input: ti}
}

// Focus focuses the input
func (s *SearchBar) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur removes focus from the input
func (s *SearchBar) Blur() {
	s.input.Blur()
}

// Focused returns true if the input has focus
func (s SearchBar) Focused() bool {
	return s.input.Focused()
}

// Value returns the current query
func (s SearchBar) Value() string {
	return s.input.Value()
}

// SetWidth updates the input width
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	s.input.Width = max(width-4, 5)
}

// Update routes input to the text field and reports every change upward.
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd) {
	if !s.input.Focused() {
		return s, nil
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if after := s.input.Value(); after != before {
		return s, tea.Batch(cmd, emit(QueryChangedMsg{Query: after}))
	}
	return s, cmd
}

// View renders the component
func (s SearchBar) View() string {
	return s.input.View()
}
