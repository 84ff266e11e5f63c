package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/tui/styles"
)

// ResultsList renders the current search results in API order
type ResultsList struct {
	items      []domain.SearchResultItem
	selectedID string // marks the row whose detail is open
	loading    bool
	err        string
	spinner    spinner.Model
	keys       ListKeyMap

	cursor     int
	offset     int
	maxVisible int
	width      int
	height     int
}

// NewResultsList creates an empty results list
func NewResultsList() ResultsList {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle
	return ResultsList{spinner: sp, keys: DefaultListKeyMap()}
}

// SetItems replaces the rows and resets the cursor
func (r *ResultsList) SetItems(items []domain.SearchResultItem) {
	r.items = items
	r.cursor = 0
	r.offset = 0
}

// Items returns the rows in display order
func (r ResultsList) Items() []domain.SearchResultItem {
	return r.items
}

// SetLoading toggles the loading line
func (r *ResultsList) SetLoading(loading bool) {
	r.loading = loading
}

// SetError sets the error line; empty clears it
func (r *ResultsList) SetError(msg string) {
	r.err = msg
}

// SetSelectedID marks the row whose detail is open
func (r *ResultsList) SetSelectedID(id string) {
	r.selectedID = id
}

// SetSize updates the component dimensions
func (r *ResultsList) SetSize(width, height int) {
	r.width = width
	r.height = height
	// Each row is two lines: title and year
	r.maxVisible = max(height/2, 1)
	r.ensureVisible()
}

// Cursor returns the highlighted row index
func (r ResultsList) Cursor() int {
	return r.cursor
}

// Selected returns the highlighted item, or nil if empty
func (r ResultsList) Selected() *domain.SearchResultItem {
	if r.cursor < 0 || r.cursor >= len(r.items) {
		return nil
	}
	return &r.items[r.cursor]
}

// Tick advances the loading spinner
func (r ResultsList) Tick(msg spinner.TickMsg) (ResultsList, tea.Cmd) {
	var cmd tea.Cmd
	r.spinner, cmd = r.spinner.Update(msg)
	return r, cmd
}

// SpinnerTick starts the spinner animation
func (r ResultsList) SpinnerTick() tea.Cmd {
	return r.spinner.Tick
}

// Update handles navigation; enter requests selection of the highlighted row
func (r ResultsList) Update(msg tea.Msg) (ResultsList, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || r.loading || r.err != "" {
		return r, nil
	}

	count := len(r.items)
	if count == 0 {
		return r, nil
	}

	switch {
	case key.Matches(keyMsg, r.keys.Down):
		r.cursor = min(r.cursor+1, count-1)
	case key.Matches(keyMsg, r.keys.Up):
		r.cursor = max(r.cursor-1, 0)
	case key.Matches(keyMsg, r.keys.Home):
		r.cursor = 0
	case key.Matches(keyMsg, r.keys.End):
		r.cursor = count - 1
	case key.Matches(keyMsg, r.keys.HalfDown):
		r.cursor = min(r.cursor+max(r.maxVisible/2, 1), count-1)
	case key.Matches(keyMsg, r.keys.HalfUp):
		r.cursor = max(r.cursor-max(r.maxVisible/2, 1), 0)
	case key.Matches(keyMsg, r.keys.Enter):
		return r, emit(SelectMovieMsg{ID: r.items[r.cursor].ID})
	}
	r.ensureVisible()
	return r, nil
}

// CountLabel renders "Found N results" for the nav bar
func CountLabel(n int) string {
	return "Found " + styles.TitleStyle.Render(fmt.Sprint(n)) + " results"
}

// View renders loading, error or the rows
func (r ResultsList) View() string {
	switch {
	case r.loading:
		return r.spinner.View() + " " + styles.DimStyle.Render("Loading...")
	case r.err != "":
		return styles.ErrorStyle.Render("⛔️ " + r.err)
	case len(r.items) == 0:
		return ""
	}

	end := len(r.items)
	if r.maxVisible > 0 {
		end = min(r.offset+r.maxVisible, end)
	}
	var lines []string
	for i := r.offset; i < end; i++ {
		lines = append(lines, r.renderItem(r.items[i], i == r.cursor)...)
	}
	return strings.Join(lines, "\n")
}

func (r ResultsList) renderItem(item domain.SearchResultItem, highlighted bool) []string {
	width := max(r.width, 10)
	marker := "  "
	if item.ID == r.selectedID {
		marker = "▶ "
	}

	title := styles.Truncate(item.Title, width-4)
	year := "🗓  " + item.Year
	return []string{
		styles.RenderListRow([]styles.RowPart{
			{Text: marker, Foreground: styles.Color(styles.Popcorn)},
			{Text: title, Bold: true},
		}, highlighted, width),
		styles.RenderListRow([]styles.RowPart{
			{Text: "  "},
			{Text: year, Foreground: styles.Color(styles.DimGray)},
		}, highlighted, width),
	}
}

func (r *ResultsList) ensureVisible() {
	// Don't adjust offset if size hasn't been set yet
	if r.maxVisible <= 0 {
		return
	}
	if r.cursor < r.offset {
		r.offset = r.cursor
	}
	if r.cursor >= r.offset+r.maxVisible {
		r.offset = r.cursor - r.maxVisible + 1
	}
}
