package domain

import (
	"context"
	"errors"
)

// Sentinel errors for domain operations
var (
	// ErrMovieNotFound indicates the movie API answered with its failure marker.
	// The text is shown to the user as-is.
	ErrMovieNotFound = errors.New("movie not found!")

	// ErrTransport indicates the request failed outright: network error,
	// non-success status or an undecodable body.
	ErrTransport = errors.New("something went wrong!")

	// ErrStoreClosed indicates a PersistentStore was used after Close.
	ErrStoreClosed = errors.New("store is closed")
)

// UserMessage converts an error into the text shown in the UI.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMovieNotFound):
		return ErrMovieNotFound.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return ErrTransport.Error() + " (request timed out)"
	default:
		return err.Error()
	}
}
