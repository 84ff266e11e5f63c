package omdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapDetail_FallsBackToRequestedID(t *testing.T) {
	d := MapDetail("tt0078748", DetailResponse{Title: "Alien", Poster: "N/A", ImdbRating: "N/A"})

	assert.Equal(t, "tt0078748", d.ID)
	assert.Empty(t, d.PosterURL)
	assert.Equal(t, 0.0, d.CriticScore())
}

func TestMapSearchItems_Empty(t *testing.T) {
	assert.Empty(t, MapSearchItems(nil))
	assert.NotNil(t, MapSearchItems(nil))
}
