package components

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inception() *domain.MovieDetail {
	return &domain.MovieDetail{
		ID:           "tt1375666",
		Title:        "Inception",
		Year:         "2010",
		Runtime:      "148 min",
		CriticRating: "8.8",
		Plot:         "A thief who steals corporate secrets.",
		ReleaseDate:  "16 Jul 2010",
		Cast:         "Leonardo DiCaprio",
		Director:     "Christopher Nolan",
		Genre:        "Action, Sci-Fi",
	}
}

func loadedPanel(t *testing.T) DetailPanel {
	t.Helper()
	d := NewDetailPanel(DefaultRatingOptions())
	d.SetSize(60, 40)
	d.Load("tt1375666", 1)
	require.True(t, d.SetDetail(1, inception()))
	return d
}

// feed sends msg to the panel and loops any emitted rating back in
func feed(d DetailPanel, msg tea.Msg) (DetailPanel, []tea.Msg) {
	d, cmd := d.Update(msg)
	msgs := collect(cmd)
	for _, m := range msgs {
		if rs, ok := m.(RatingSetMsg); ok {
			d, _ = d.Update(rs)
		}
	}
	return d, msgs
}

func TestDetailPanel_StaleResponsesAreDropped(t *testing.T) {
	d := NewDetailPanel(DefaultRatingOptions())
	assert.Equal(t, DetailIdle, d.State())

	d.Load("tt1", 1)
	d.Load("tt2", 2)
	assert.Equal(t, DetailLoading, d.State())

	assert.False(t, d.SetDetail(1, &domain.MovieDetail{ID: "tt1"}))
	assert.Equal(t, DetailLoading, d.State())

	assert.True(t, d.SetDetail(2, &domain.MovieDetail{ID: "tt2"}))
	assert.Equal(t, DetailLoaded, d.State())
	assert.False(t, d.SetError(2, "late"))
}

func TestDetailPanel_Failed(t *testing.T) {
	d := NewDetailPanel(DefaultRatingOptions())
	d.Load("tt1", 3)
	require.True(t, d.SetError(3, domain.UserMessage(errors.New("boom"))))
	assert.Equal(t, DetailFailed, d.State())
	assert.Contains(t, d.View(), "boom")
}

func TestDetailPanel_RateAndAdd(t *testing.T) {
	d := loadedPanel(t)

	_, msgs := feed(d, runes("a"))
	assert.Empty(t, msgs, "add needs a rating")

	d, msgs = feed(d, runes("8"))
	assert.Equal(t, []tea.Msg{RatingSetMsg{Rating: 8}}, msgs)
	assert.Equal(t, 8, d.UserRating())
	assert.Contains(t, d.View(), "+ Add to list")

	_, msgs = feed(d, runes("a"))
	require.Len(t, msgs, 1)
	add, ok := msgs[0].(AddWatchedMsg)
	require.True(t, ok)
	assert.Equal(t, "tt1375666", add.Entry.ID)
	assert.Equal(t, "Inception", add.Entry.Title)
	assert.Equal(t, 8.0, add.Entry.UserRating)
	assert.Equal(t, 8.8, add.Entry.CriticRating)
	assert.Equal(t, 148.0, add.Entry.RuntimeMinutes)
}

func TestDetailPanel_AlreadyRatedHidesControls(t *testing.T) {
	d := loadedPanel(t)
	d.SetAlreadyRated(true)

	view := d.View()
	assert.Contains(t, view, "You already rated this movie.")
	assert.NotContains(t, view, "+ Add to list")

	d, msgs := feed(d, runes("8"))
	assert.Empty(t, msgs)
	assert.Equal(t, 0, d.UserRating())
	assert.Nil(t, d.ConfirmAdd())
}

func TestDetailPanel_EscClearsPreviewBeforeClosing(t *testing.T) {
	d := loadedPanel(t)

	d, _ = feed(d, runes("l"))
	require.Equal(t, 1, d.Rating().Hovered())

	d, msgs := feed(d, keyOf(tea.KeyEsc))
	assert.Empty(t, msgs)
	assert.Equal(t, 0, d.Rating().Hovered())

	_, msgs = feed(d, keyOf(tea.KeyEsc))
	assert.Equal(t, []tea.Msg{CloseDetailMsg{}}, msgs)
}

func TestDetailPanel_OpenAndCopy(t *testing.T) {
	d := loadedPanel(t)
	url := "https://www.imdb.com/title/tt1375666/"

	_, msgs := feed(d, runes("o"))
	assert.Equal(t, []tea.Msg{OpenURLMsg{URL: url}}, msgs)

	_, msgs = feed(d, runes("y"))
	assert.Equal(t, []tea.Msg{CopyTextMsg{Text: url}}, msgs)
}

func TestDetailPanel_View(t *testing.T) {
	d := loadedPanel(t)
	view := d.View()
	assert.Contains(t, view, "Inception")
	assert.Contains(t, view, "16 Jul 2010 • 148 min")
	assert.Contains(t, view, "8.8 IMDb rating")
	assert.Contains(t, view, "Starring Leonardo DiCaprio")
	assert.Contains(t, view, "Directed by Christopher Nolan")
}

func TestDetailPanel_LoadResetsRating(t *testing.T) {
	d := loadedPanel(t)
	d, _ = feed(d, runes("5"))
	require.Equal(t, 5, d.UserRating())

	d.Load("tt0133093", 2)
	assert.Equal(t, 0, d.UserRating())
	assert.Equal(t, 0, d.Rating().Rating())
}
