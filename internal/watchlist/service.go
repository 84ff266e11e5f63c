package watchlist

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mmcdole/popcorn/internal/domain"
)

// Service orchestrates watched-list reads and whole-list rewrites.
type Service struct {
	store  domain.KVStore
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new watchlist service.
func NewService(store domain.KVStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger, now: time.Now}
}

// Load reads the persisted list. An absent key yields an empty list.
func (s *Service) Load() ([]domain.WatchedEntry, error) {
	var entries []domain.WatchedEntry
	ok, err := s.store.Get(domain.WatchedKey, &entries)
	if err != nil {
		s.logger.Error("failed to load watched list", "error", err)
		return []domain.WatchedEntry{}, fmt.Errorf("load watched list: %w", err)
	}
	if !ok || entries == nil {
		s.logger.Debug("no watched list stored")
		return []domain.WatchedEntry{}, nil
	}
	s.logger.Debug("loaded watched list", "count", len(entries))
	return entries, nil
}

// Save overwrites the persisted list with entries.
func (s *Service) Save(entries []domain.WatchedEntry) error {
	if entries == nil {
		entries = []domain.WatchedEntry{}
	}
	if err := s.store.Set(domain.WatchedKey, entries); err != nil {
		s.logger.Error("failed to save watched list", "error", err, "count", len(entries))
		return fmt.Errorf("save watched list: %w", err)
	}
	s.logger.Debug("saved watched list", "count", len(entries))
	return nil
}

// Add appends entry (stamping AddedAt when unset) and persists the result.
// The returned list is valid even when persisting fails.
func (s *Service) Add(entries []domain.WatchedEntry, entry domain.WatchedEntry) ([]domain.WatchedEntry, error) {
	if entry.AddedAt == 0 {
		entry.AddedAt = s.now().Unix()
	}
	next := domain.AppendWatched(entries, entry)
	return next, s.Save(next)
}

// Remove drops every entry with id and persists the result.
// The returned list is valid even when persisting fails.
func (s *Service) Remove(entries []domain.WatchedEntry, id string) ([]domain.WatchedEntry, error) {
	next := domain.RemoveWatched(entries, id)
	return next, s.Save(next)
}
