package domain

import (
	"math"
	"strconv"
)

// Summary holds the aggregate statistics over a watched list.
type Summary struct {
	Count           int
	AvgCriticRating float64
	AvgUserRating   float64
	AvgRuntime      float64
}

// SummaryDisplay is the formatted form of a Summary.
type SummaryDisplay struct {
	Count        string
	CriticRating string // rounded to the nearest integer
	UserRating   string
	Runtime      string
}

// Average accumulates value/len per element instead of sum/len.
// The empty sequence therefore averages to 0 rather than NaN.
func Average(values []float64) float64 {
	var acc float64
	for _, v := range values {
		acc += v / float64(len(values))
	}
	return acc
}

// Summarize computes the watched-list statistics.
func Summarize(entries []WatchedEntry) Summary {
	critic := make([]float64, len(entries))
	user := make([]float64, len(entries))
	runtime := make([]float64, len(entries))
	for i, e := range entries {
		critic[i] = e.CriticRating
		user[i] = e.UserRating
		runtime[i] = e.RuntimeMinutes
	}
	return Summary{
		Count:           len(entries),
		AvgCriticRating: Average(critic),
		AvgUserRating:   Average(user),
		AvgRuntime:      Average(runtime),
	}
}

// Display formats the summary for rendering.
func (s Summary) Display() SummaryDisplay {
	return SummaryDisplay{
		Count:        strconv.Itoa(s.Count),
		CriticRating: FormatNumber(RoundHalfUp(s.AvgCriticRating)),
		UserRating:   FormatNumber(s.AvgUserRating),
		Runtime:      FormatNumber(s.AvgRuntime),
	}
}

// RoundHalfUp rounds to the nearest integer, halves toward +Inf.
func RoundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// FormatNumber renders v in its shortest form ("8", "7.5", "105").
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
