package tui

import (
	"github.com/mmcdole/popcorn/internal/domain"
)

// Message types for the TUI

// SearchResultMsg carries the outcome of one search cycle.
// Seq identifies the cycle; only the latest one is applied.
type SearchResultMsg struct {
	Seq     uint64
	Query   string
	Results []domain.SearchResultItem
	Err     error
}

// DetailLoadedMsg carries the outcome of a detail fetch
type DetailLoadedMsg struct {
	Seq    uint64
	ID     string
	Detail *domain.MovieDetail
	Err    error
}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status line if it still shows message ID
type ClearStatusMsg struct {
	ID int
}
