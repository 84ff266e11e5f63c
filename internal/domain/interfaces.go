package domain

import "context"

// MovieClient is the read-only movie-data collaborator.
type MovieClient interface {
	// Search returns matches for a title query in API order.
	// A "no match" answer is ErrMovieNotFound.
	Search(ctx context.Context, query string) ([]SearchResultItem, error)

	// GetDetail returns the full record for an identifier.
	GetDetail(ctx context.Context, id string) (*MovieDetail, error)
}

// KVStore is the persistent key-value collaborator. Values are stored as JSON.
type KVStore interface {
	// Get decodes the value stored under key into dest.
	// ok is false when the key is absent.
	Get(key string, dest any) (ok bool, err error)

	// Set replaces the value stored under key.
	Set(key string, value any) error

	Close() error
}
