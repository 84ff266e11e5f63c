package components

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexOf(s, sub string) int {
	return strings.Index(s, sub)
}

func sampleWatched() []domain.WatchedEntry {
	return []domain.WatchedEntry{
		{ID: "tt1375666", Title: "Inception", Year: "2010", UserRating: 9, CriticRating: 8.8, RuntimeMinutes: 148},
		{ID: "tt0133093", Title: "The Matrix", Year: "1999", UserRating: 8, CriticRating: 8.7, RuntimeMinutes: 136},
		{ID: "tt0078748", Title: "Alien", Year: "1979", UserRating: 7, CriticRating: 8.5, RuntimeMinutes: 117},
	}
}

func TestWatchedList_ShowsEntriesInOrder(t *testing.T) {
	w := NewWatchedList()
	w.SetEntries(sampleWatched())

	view := w.View()
	assert.Less(t, indexOf(view, "Inception"), indexOf(view, "The Matrix"))
	assert.Less(t, indexOf(view, "The Matrix"), indexOf(view, "Alien"))
	assert.Contains(t, view, "148 min")
}

func TestWatchedList_FilterNarrowsWithoutMutating(t *testing.T) {
	entries := sampleWatched()
	w := NewWatchedList()
	w.SetEntries(entries)

	w, _ = w.Update(runes("/"))
	require.True(t, w.IsFilterTyping())

	w, _ = typeText(w, "matr")
	visible := w.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "tt0133093", visible[0].ID)
	assert.Len(t, entries, 3)
	assert.Equal(t, "Inception", entries[0].Title)

	// enter keeps the filter but hands keys back to navigation
	w, _ = w.Update(keyOf(tea.KeyEnter))
	assert.False(t, w.IsFilterTyping())
	assert.Len(t, w.Visible(), 1)

	w, _ = w.Update(keyOf(tea.KeyEsc))
	assert.Len(t, w.Visible(), 3)
}

func TestWatchedList_BackspaceOnEmptyFilterCloses(t *testing.T) {
	w := NewWatchedList()
	w.SetEntries(sampleWatched())
	w, _ = w.Update(runes("/"))
	w, _ = w.Update(keyOf(tea.KeyBackspace))
	assert.False(t, w.IsFilterTyping())
	assert.Len(t, w.Visible(), 3)
}

func TestWatchedList_RemoveEmitsSelectedID(t *testing.T) {
	w := NewWatchedList()
	w.SetEntries(sampleWatched())

	w, _ = w.Update(runes("j"))
	_, cmd := w.Update(runes("x"))
	assert.Equal(t, []tea.Msg{RemoveWatchedMsg{ID: "tt0133093"}}, collect(cmd))
}

func TestWatchedList_RemoveOnEmptyIsNoop(t *testing.T) {
	w := NewWatchedList()
	w.SetEntries(nil)
	_, cmd := w.Update(runes("x"))
	assert.Nil(t, cmd)
	assert.Nil(t, w.Selected())
}

func TestWatchedList_CursorClampsWhenEntriesShrink(t *testing.T) {
	w := NewWatchedList()
	w.SetEntries(sampleWatched())
	w, _ = w.Update(runes("G"))
	require.Equal(t, "tt0078748", w.Selected().ID)

	w.SetEntries(sampleWatched()[:2])
	assert.Equal(t, "tt0133093", w.Selected().ID)
}

func TestWatchedList_ShowsAddedTime(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	w := NewWatchedList()
	w.now = func() time.Time { return now }
	w.SetSize(80, 30)
	w.SetEntries([]domain.WatchedEntry{
		{ID: "tt1", Title: "Heat", Year: "1995", AddedAt: now.Add(-48 * time.Hour).Unix()},
	})
	assert.Contains(t, w.View(), "added 2 days ago")
}
