package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/popcorn/internal/domain"
)

// Requests that components send up to the app model.

// QueryChangedMsg reports the full search string after every edit
type QueryChangedMsg struct {
	Query string
}

// SelectMovieMsg requests toggling the selection of a search result
type SelectMovieMsg struct {
	ID string
}

// AddWatchedMsg requests appending a rated movie to the watched list
type AddWatchedMsg struct {
	Entry domain.WatchedEntry
}

// RemoveWatchedMsg requests deleting a watched entry
type RemoveWatchedMsg struct {
	ID string
}

// RatingSetMsg reports a committed rating
type RatingSetMsg struct {
	Rating int
}

// CloseDetailMsg requests clearing the selection
type CloseDetailMsg struct{}

// OpenURLMsg requests opening a URL in the browser
type OpenURLMsg struct {
	URL string
}

// CopyTextMsg requests placing text on the clipboard
type CopyTextMsg struct {
	Text string
}

// emit wraps a message in a command
func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
