package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverage(t *testing.T) {
	t.Run("empty sequence is zero", func(t *testing.T) {
		got := Average(nil)
		assert.False(t, math.IsNaN(got))
		assert.Equal(t, 0.0, got)
	})

	t.Run("mean of values", func(t *testing.T) {
		assert.Equal(t, 105.0, Average([]float64{120, 90}))
		assert.Equal(t, 8.0, Average([]float64{9, 7}))
	})
}

func TestSummarize(t *testing.T) {
	t.Run("empty watched list", func(t *testing.T) {
		s := Summarize([]WatchedEntry{})

		assert.Equal(t, 0, s.Count)
		assert.Equal(t, 0.0, s.AvgCriticRating)
		assert.Equal(t, 0.0, s.AvgUserRating)
		assert.Equal(t, 0.0, s.AvgRuntime)

		d := s.Display()
		assert.Equal(t, SummaryDisplay{Count: "0", CriticRating: "0", UserRating: "0", Runtime: "0"}, d)
	})

	t.Run("two entries", func(t *testing.T) {
		entries := []WatchedEntry{
			{ID: "tt1", CriticRating: 8.0, UserRating: 9, RuntimeMinutes: 120},
			{ID: "tt2", CriticRating: 6.0, UserRating: 7, RuntimeMinutes: 90},
		}

		d := Summarize(entries).Display()

		assert.Equal(t, "2", d.Count)
		assert.Equal(t, "7", d.CriticRating)
		assert.Equal(t, "8", d.UserRating)
		assert.Equal(t, "105", d.Runtime)
	})

	t.Run("user and runtime averages are not rounded", func(t *testing.T) {
		entries := []WatchedEntry{
			{CriticRating: 7.4, UserRating: 8, RuntimeMinutes: 100},
			{CriticRating: 7.7, UserRating: 9, RuntimeMinutes: 101},
		}

		d := Summarize(entries).Display()

		assert.Equal(t, "8", d.CriticRating)
		assert.Equal(t, "8.5", d.UserRating)
		assert.Equal(t, "100.5", d.Runtime)
	})
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 8.0, RoundHalfUp(7.5))
	assert.Equal(t, 7.0, RoundHalfUp(7.49))
	assert.Equal(t, 0.0, RoundHalfUp(0))
}
