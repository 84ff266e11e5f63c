package store

import (
	"path/filepath"
	"testing"

	"github.com/mmcdole/popcorn/internal/adapter"
	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeFactory func(t *testing.T, path string) domain.KVStore

func backends() map[string]storeFactory {
	return map[string]storeFactory{
		"bolt": func(t *testing.T, path string) domain.KVStore {
			s, err := NewBoltStore(path + ".db")
			require.NoError(t, err)
			return s
		},
		"sqlite": func(t *testing.T, path string) domain.KVStore {
			s, err := NewSQLStore(path + ".sqlite")
			require.NoError(t, err)
			return s
		},
	}
}

var sample = []domain.WatchedEntry{
	{ID: "tt1375666", Title: "Inception", Year: "2010", UserRating: 9, CriticRating: 8.8, RuntimeMinutes: 148},
	{ID: "tt0078748", Title: "Alien", Year: "1979", UserRating: 8, CriticRating: 8.5, RuntimeMinutes: 117},
}

func TestStores_RoundTrip(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			s := open(t, filepath.Join(t.TempDir(), "kv"))
			defer s.Close()

			var got []domain.WatchedEntry
			ok, err := s.Get(domain.WatchedKey, &got)
			require.NoError(t, err)
			assert.False(t, ok, "absent key")

			require.NoError(t, s.Set(domain.WatchedKey, sample))
			ok, err = s.Get(domain.WatchedKey, &got)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, sample, got)

			// Overwrite replaces wholesale
			require.NoError(t, s.Set(domain.WatchedKey, sample[:1]))
			got = nil
			_, err = s.Get(domain.WatchedKey, &got)
			require.NoError(t, err)
			assert.Equal(t, sample[:1], got)
		})
	}
}

func TestStores_PersistAcrossReopen(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "kv")

			s := open(t, path)
			require.NoError(t, s.Set(domain.WatchedKey, sample))
			require.NoError(t, s.Close())

			s = open(t, path)
			defer s.Close()
			var got []domain.WatchedEntry
			ok, err := s.Get(domain.WatchedKey, &got)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, sample, got)
		})
	}
}

func TestStores_ClosedRejectsAccess(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			s := open(t, filepath.Join(t.TempDir(), "kv"))
			require.NoError(t, s.Close())

			var got []domain.WatchedEntry
			_, err := s.Get(domain.WatchedKey, &got)
			assert.ErrorIs(t, err, domain.ErrStoreClosed)
			assert.ErrorIs(t, s.Set(domain.WatchedKey, sample), domain.ErrStoreClosed)
		})
	}
}

func TestBoltStore_MemoryOnly(t *testing.T) {
	s, err := NewBoltStore("")
	require.NoError(t, err)

	require.NoError(t, s.Set("k", []string{"a"}))
	var got []string
	ok, err := s.Get("k", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, got)
}

func TestOpen_SelectsBackend(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(adapter.StorageConfig{Backend: adapter.StorageMemory})
	require.NoError(t, err)
	assert.IsType(t, &BoltStore{}, s)
	s.Close()

	s, err = Open(adapter.StorageConfig{Backend: adapter.StorageSQLite, Path: filepath.Join(dir, "w.sqlite")})
	require.NoError(t, err)
	assert.IsType(t, &SQLStore{}, s)
	s.Close()

	_, err = Open(adapter.StorageConfig{Backend: "redis"})
	assert.Error(t, err)
}
