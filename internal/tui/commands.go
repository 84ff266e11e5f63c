package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/popcorn/internal/movies"
)

// Command factories for async operations

const (
	searchTimeout = 30 * time.Second
	detailTimeout = 30 * time.Second
	statusTTL     = 3 * time.Second
)

// SearchCmd runs a title search tagged with seq
func SearchCmd(ctx context.Context, svc *movies.Service, seq uint64, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, searchTimeout)
		defer cancel()

		results, err := svc.Search(ctx, query)
		return SearchResultMsg{Seq: seq, Query: query, Results: results, Err: err}
	}
}

// DetailCmd fetches the full record for id, tagged with seq
func DetailCmd(ctx context.Context, svc *movies.Service, seq uint64, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, detailTimeout)
		defer cancel()

		detail, err := svc.GetDetail(ctx, id)
		return DetailLoadedMsg{Seq: seq, ID: id, Detail: detail, Err: err}
	}
}

// OpenURLCmd opens url in the browser
func OpenURLCmd(opener Opener, url string) tea.Cmd {
	return func() tea.Msg {
		if err := opener.Open(url); err != nil {
			return StatusMsg{Message: "could not open browser: " + err.Error(), IsError: true}
		}
		return StatusMsg{Message: "Opened " + url}
	}
}

// CopyCmd places text on the clipboard
func CopyCmd(opener Opener, text string) tea.Cmd {
	return func() tea.Msg {
		if err := opener.Copy(text); err != nil {
			return StatusMsg{Message: err.Error(), IsError: true}
		}
		return StatusMsg{Message: "Copied " + text}
	}
}

// ClearStatusCmd returns a command that clears status id after a delay
func ClearStatusCmd(id int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{ID: id}
	})
}
