package search

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/popcorn/internal/domain"
	sfuzzy "github.com/sahilm/fuzzy"
)

// ErrNoMatch indicates no watched entry matched a query
var ErrNoMatch = errors.New("no watched movie matches")

// FilterResult is a watched entry that matched a filter query
type FilterResult struct {
	Index          int // Position in the unfiltered list
	Entry          domain.WatchedEntry
	MatchedIndexes []int // Title rune positions that matched (for highlighting)
}

// titleIndex implements sahilm/fuzzy.Source over watched titles
type titleIndex []domain.WatchedEntry

func (idx titleIndex) String(i int) string { return idx[i].Title }
func (idx titleIndex) Len() int            { return len(idx) }

// Filter fuzzy-matches query against watched titles, best match first.
// An empty query returns every entry in list order. entries is not modified.
func Filter(query string, entries []domain.WatchedEntry) []FilterResult {
	query = strings.TrimSpace(query)
	if query == "" {
		results := make([]FilterResult, len(entries))
		for i, e := range entries {
			results[i] = FilterResult{Index: i, Entry: e}
		}
		return results
	}

	matches := sfuzzy.FindFrom(query, titleIndex(entries))
	results := make([]FilterResult, len(matches))
	for i, m := range matches {
		results[i] = FilterResult{
			Index:          m.Index,
			Entry:          entries[m.Index],
			MatchedIndexes: m.MatchedIndexes,
		}
	}
	return results
}

// Resolve finds the single watched entry named by query: an exact IMDb id,
// an exact title (case-insensitive), or the closest fuzzy title match.
func Resolve(query string, entries []domain.WatchedEntry) (domain.WatchedEntry, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.WatchedEntry{}, ErrNoMatch
	}

	for _, e := range entries {
		if e.ID == query {
			return e, nil
		}
	}
	for _, e := range entries {
		if strings.EqualFold(e.Title, query) {
			return e, nil
		}
	}

	titles := make([]string, len(entries))
	for i, e := range entries {
		titles[i] = e.Title
	}
	ranks := fuzzy.RankFindFold(query, titles)
	if len(ranks) == 0 {
		return domain.WatchedEntry{}, fmt.Errorf("%w %q", ErrNoMatch, query)
	}

	// Sort by distance (lower is better)
	sort.Stable(ranks)
	if len(ranks) > 1 && ranks[0].Distance == ranks[1].Distance {
		return domain.WatchedEntry{}, fmt.Errorf("%q is ambiguous: %q or %q", query, ranks[0].Target, ranks[1].Target)
	}
	return entries[ranks[0].OriginalIndex], nil
}
