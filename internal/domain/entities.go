package domain

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MinQueryLength is the shortest query (in runes) that triggers a network search.
// Shorter queries clear the results without an error.
const MinQueryLength = 3

// WatchedKey is the PersistentStore key holding the whole watched list.
const WatchedKey = "watched"

// SearchResultItem is one row of a title search. Recreated on every search.
type SearchResultItem struct {
	ID        string // IMDb identifier, e.g. "tt1375666"
	Title     string
	Year      string
	PosterURL string
}

// MovieDetail is the full record fetched for a selected movie.
type MovieDetail struct {
	ID           string
	Title        string
	Year         string
	PosterURL    string
	Runtime      string // Free text as returned by the API, e.g. "148 min"
	CriticRating string // Free text, e.g. "8.8" or "N/A"
	Plot         string
	ReleaseDate  string
	Cast         string
	Director     string
	Genre        string
}

// RuntimeMinutes parses the first whitespace-delimited token of Runtime.
// Unparsable values ("N/A", empty) yield 0.
func (d MovieDetail) RuntimeMinutes() float64 {
	fields := strings.Fields(d.Runtime)
	if len(fields) == 0 {
		return 0
	}
	return parseNumber(fields[0])
}

// CriticScore parses CriticRating as a number (0 when unparsable).
func (d MovieDetail) CriticScore() float64 {
	return parseNumber(d.CriticRating)
}

// IMDbURL returns the public IMDb page for the movie.
func (d MovieDetail) IMDbURL() string {
	return IMDbURL(d.ID)
}

// IMDbURL returns the public IMDb page for an identifier.
func IMDbURL(id string) string {
	if id == "" {
		return ""
	}
	return "https://www.imdb.com/title/" + id + "/"
}

// WatchedEntry is a rated movie in the user's watched list.
// The JSON keys match the layout written by earlier versions of the app.
type WatchedEntry struct {
	ID             string  `json:"imdbID" yaml:"imdbID"`
	Title          string  `json:"title" yaml:"title"`
	Year           string  `json:"year" yaml:"year"`
	PosterURL      string  `json:"poster" yaml:"poster"`
	UserRating     float64 `json:"userRating" yaml:"userRating"`
	CriticRating   float64 `json:"imdbRating" yaml:"imdbRating"`
	RuntimeMinutes float64 `json:"runtime" yaml:"runtime"`
	AddedAt        int64   `json:"addedAt,omitempty" yaml:"addedAt,omitempty"` // unix seconds
}

// NewWatchedEntry builds a watched-list entry from a loaded detail record.
func NewWatchedEntry(d MovieDetail, userRating float64) WatchedEntry {
	return WatchedEntry{
		ID:             d.ID,
		Title:          d.Title,
		Year:           d.Year,
		PosterURL:      d.PosterURL,
		UserRating:     userRating,
		CriticRating:   d.CriticScore(),
		RuntimeMinutes: d.RuntimeMinutes(),
	}
}

// ContainsWatched reports whether id is already in the watched list.
func ContainsWatched(entries []WatchedEntry, id string) bool {
	for _, e := range entries {
		if e.ID == id {
			return true
		}
	}
	return false
}

// AppendWatched returns a new slice with entry appended; entries is not modified.
// Duplicates are not filtered here.
func AppendWatched(entries []WatchedEntry, entry WatchedEntry) []WatchedEntry {
	out := make([]WatchedEntry, 0, len(entries)+1)
	out = append(out, entries...)
	return append(out, entry)
}

// RemoveWatched returns a new slice without any entry whose ID equals id.
// The result is never nil so an emptied list serializes as [].
func RemoveWatched(entries []WatchedEntry, id string) []WatchedEntry {
	out := make([]WatchedEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}

// QueryTooShort reports whether query is below MinQueryLength runes.
func QueryTooShort(query string) bool {
	return utf8.RuneCountInString(query) < MinQueryLength
}

func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
