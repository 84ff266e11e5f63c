package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/search"
	"github.com/mmcdole/popcorn/internal/tui/styles"
)

// watchedRowLines is the height of one rendered entry
const watchedRowLines = 3

// WatchedList renders the watched entries with a local fuzzy filter.
// Filtering only changes what is shown; the entries are never modified.
type WatchedList struct {
	entries []domain.WatchedEntry
	keys    ListKeyMap

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filtered     []search.FilterResult

	cursor     int
	offset     int
	maxVisible int
	width      int
	height     int

	now func() time.Time
}

// NewWatchedList creates an empty watched list
func NewWatchedList() WatchedList {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return WatchedList{
		keys:        DefaultListKeyMap(),
		filterInput: ti,
		now:         time.Now,
	}
}

// SetEntries replaces the entries, keeping the filter query
func (w *WatchedList) SetEntries(entries []domain.WatchedEntry) {
	w.entries = entries
	w.applyFilter()
	w.cursor = min(w.cursor, max(len(w.filtered)-1, 0))
	w.ensureVisible()
}

// SetSize updates the component dimensions
func (w *WatchedList) SetSize(width, height int) {
	w.width = width
	w.height = height
	w.recalcMaxVisible()
	w.ensureVisible()
}

// IsFilterTyping returns true if the filter input has focus
func (w WatchedList) IsFilterTyping() bool {
	return w.filterActive && w.filterInput.Focused()
}

// Visible returns the entries currently shown, in display order
func (w WatchedList) Visible() []domain.WatchedEntry {
	out := make([]domain.WatchedEntry, len(w.filtered))
	for i, r := range w.filtered {
		out[i] = r.Entry
	}
	return out
}

// Selected returns the highlighted entry, or nil if none
func (w WatchedList) Selected() *domain.WatchedEntry {
	if w.cursor < 0 || w.cursor >= len(w.filtered) {
		return nil
	}
	e := w.filtered[w.cursor].Entry
	return &e
}

// Update handles filter typing, navigation and removal
func (w WatchedList) Update(msg tea.Msg) (WatchedList, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	// Filter input has focus (typing mode)
	if w.IsFilterTyping() {
		switch keyMsg.String() {
		case "esc":
			w.clearFilter()
			return w, nil
		case "enter":
			// Accept filter, blur input to allow navigation
			w.filterInput.Blur()
			return w, nil
		case "backspace":
			if w.filterInput.Value() == "" {
				w.clearFilter()
				return w, nil
			}
		}

		var cmd tea.Cmd
		w.filterInput, cmd = w.filterInput.Update(keyMsg)
		w.applyFilter()
		w.cursor, w.offset = 0, 0
		return w, cmd
	}

	switch {
	case key.Matches(keyMsg, w.keys.Filter):
		w.filterActive = true
		w.recalcMaxVisible()
		return w, w.filterInput.Focus()
	case key.Matches(keyMsg, w.keys.Escape):
		if w.filterActive {
			w.clearFilter()
		}
		return w, nil
	}

	count := len(w.filtered)
	if count == 0 {
		return w, nil
	}

	switch {
	case key.Matches(keyMsg, w.keys.Down):
		w.cursor = min(w.cursor+1, count-1)
	case key.Matches(keyMsg, w.keys.Up):
		w.cursor = max(w.cursor-1, 0)
	case key.Matches(keyMsg, w.keys.Home):
		w.cursor = 0
	case key.Matches(keyMsg, w.keys.End):
		w.cursor = count - 1
	case key.Matches(keyMsg, w.keys.Delete):
		return w, emit(RemoveWatchedMsg{ID: w.filtered[w.cursor].Entry.ID})
	}
	w.ensureVisible()
	return w, nil
}

// View renders the filter bar and the visible rows
func (w WatchedList) View() string {
	var lines []string
	if w.filterActive {
		lines = append(lines, w.filterInput.View())
	}

	if len(w.filtered) == 0 {
		if w.filterActive {
			lines = append(lines, styles.DimStyle.Render("  no matches"))
		}
		return strings.Join(lines, "\n")
	}

	end := len(w.filtered)
	if w.maxVisible > 0 {
		end = min(w.offset+w.maxVisible, end)
	}
	for i := w.offset; i < end; i++ {
		lines = append(lines, w.renderRow(w.filtered[i], i == w.cursor)...)
	}
	return strings.Join(lines, "\n")
}

func (w WatchedList) renderRow(r search.FilterResult, selected bool) []string {
	width := max(w.width, 10)
	e := r.Entry

	title := highlightMatches(styles.Truncate(e.Title, width-8), r.MatchedIndexes)
	stats := "⭐️ " + domain.FormatNumber(e.CriticRating) +
		"  🌟 " + domain.FormatNumber(e.UserRating) +
		"  ⏳ " + domain.FormatNumber(e.RuntimeMinutes) + " min"

	meta := e.Year
	if e.AddedAt > 0 {
		meta += " · added " + humanize.RelTime(time.Unix(e.AddedAt, 0), w.now(), "ago", "from now")
	}
	if e.PosterURL != "" {
		meta += " · " + e.PosterURL
	}

	return []string{
		styles.RenderListRow([]styles.RowPart{
			{Text: title, Bold: true},
			{Text: "  x", Foreground: styles.Color(styles.Red)},
		}, selected, width),
		styles.RenderListRow([]styles.RowPart{
			{Text: stats},
		}, selected, width),
		styles.RenderListRow([]styles.RowPart{
			{Text: styles.Truncate(meta, width-2), Foreground: styles.Color(styles.DimGray)},
		}, selected, width),
	}
}

// highlightMatches renders matched byte offsets in the accent color
func highlightMatches(s string, matched []int) string {
	if len(matched) == 0 {
		return s
	}
	set := make(map[int]bool, len(matched))
	for _, i := range matched {
		set[i] = true
	}

	var b strings.Builder
	for i, r := range s {
		if set[i] {
			b.WriteString(styles.MatchHighlightStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (w *WatchedList) applyFilter() {
	w.filtered = search.Filter(w.filterInput.Value(), w.entries)
}

func (w *WatchedList) clearFilter() {
	w.filterActive = false
	w.filterInput.SetValue("")
	w.filterInput.Blur()
	w.applyFilter()
	w.cursor, w.offset = 0, 0
	w.recalcMaxVisible()
}

func (w *WatchedList) recalcMaxVisible() {
	if w.height <= 0 {
		w.maxVisible = 0 // unsized: show everything
		return
	}
	available := w.height
	// Reserve space for filter bar when active
	if w.filterActive {
		available--
	}
	w.maxVisible = max(available/watchedRowLines, 1)
}

func (w *WatchedList) ensureVisible() {
	if w.maxVisible <= 0 {
		return
	}
	if w.cursor < w.offset {
		w.offset = w.cursor
	}
	if w.cursor >= w.offset+w.maxVisible {
		w.offset = w.cursor - w.maxVisible + 1
	}
}
