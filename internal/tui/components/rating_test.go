package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingInput_KeyboardPreviewThenCommit(t *testing.T) {
	r := NewRatingInput(DefaultRatingOptions())

	for range 3 {
		r, _ = r.Update(keyOf(tea.KeyRight))
	}
	assert.Equal(t, 3, r.Hovered())
	assert.Equal(t, 0, r.Rating())
	assert.Equal(t, 3, r.Displayed())

	r, cmd := r.Update(keyOf(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, []tea.Msg{RatingSetMsg{Rating: 3}}, collect(cmd))
	assert.Equal(t, 3, r.Rating())
	assert.Equal(t, 0, r.Hovered())
}

func TestRatingInput_CommitWithoutPreviewIsIgnored(t *testing.T) {
	r := NewRatingInput(DefaultRatingOptions())
	r, cmd := r.Update(keyOf(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, r.Rating())
}

func TestRatingInput_DigitKeys(t *testing.T) {
	r := NewRatingInput(DefaultRatingOptions())

	r, cmd := r.Update(runes("7"))
	assert.Equal(t, []tea.Msg{RatingSetMsg{Rating: 7}}, collect(cmd))
	assert.Equal(t, 7, r.Rating())

	r, cmd = r.Update(runes("0"))
	assert.Equal(t, []tea.Msg{RatingSetMsg{Rating: 10}}, collect(cmd))
	assert.Equal(t, 10, r.Rating())

	five := NewRatingInput(RatingOptions{MaxRating: 5})
	five, cmd = five.Update(runes("7"))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, five.Rating())
}

func TestRatingInput_EscClearsPreview(t *testing.T) {
	r := NewRatingInput(DefaultRatingOptions())
	assert.False(t, r.Handles(keyOf(tea.KeyEsc)))

	r, _ = r.Update(runes("l"))
	r, _ = r.Update(runes("l"))
	assert.True(t, r.Handles(keyOf(tea.KeyEsc)))

	r, _ = r.Update(keyOf(tea.KeyEsc))
	assert.Equal(t, 0, r.Hovered())
	assert.Equal(t, 0, r.Displayed())
}

func TestRatingInput_HoverClamps(t *testing.T) {
	r := NewRatingInput(DefaultRatingOptions())
	r.Hover(99)
	assert.Equal(t, 10, r.Hovered())
	r.Hover(-4)
	assert.Equal(t, 1, r.Hovered())
}

func TestRatingInput_DefaultRating(t *testing.T) {
	r := NewRatingInput(RatingOptions{MaxRating: 5, DefaultRating: 9})
	assert.Equal(t, 5, r.Rating())
}

func TestRatingInput_Mouse(t *testing.T) {
	// One-cell icons with one blank between them: icon k starts at origin+2(k-1)
	r := NewRatingInput(RatingOptions{MaxRating: 5, Size: 1, FullIcon: "*", EmptyIcon: "."})
	r.SetOrigin(10, 5)

	r, cmd := r.Update(tea.MouseMsg{X: 14, Y: 5, Action: tea.MouseActionMotion})
	assert.Nil(t, cmd)
	assert.Equal(t, 3, r.Hovered())

	// Gap cell clears the preview
	r, _ = r.Update(tea.MouseMsg{X: 11, Y: 5, Action: tea.MouseActionMotion})
	assert.Equal(t, 0, r.Hovered())

	// Other row is outside
	r, _ = r.Update(tea.MouseMsg{X: 14, Y: 6, Action: tea.MouseActionMotion})
	assert.Equal(t, 0, r.Hovered())

	r, cmd = r.Update(tea.MouseMsg{X: 12, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, []tea.Msg{RatingSetMsg{Rating: 2}}, collect(cmd))
	assert.Equal(t, 2, r.Rating())
}

func TestRatingInput_ViewShowsDisplayedValue(t *testing.T) {
	r := NewRatingInput(RatingOptions{MaxRating: 4, FullIcon: "*", EmptyIcon: "."})
	r.Hover(3)
	assert.Contains(t, r.View(), "3")
}
