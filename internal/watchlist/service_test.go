package watchlist

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*Service, *store.BoltStore) {
	t.Helper()
	kv, err := store.NewBoltStore("")
	require.NoError(t, err)
	svc := NewService(kv, nil)
	svc.now = func() time.Time { return time.Unix(1700000000, 0) }
	return svc, kv
}

func TestLoad_AbsentIsEmpty(t *testing.T) {
	svc, _ := newService(t)

	entries, err := svc.Load()
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestAdd_PersistsWholeList(t *testing.T) {
	svc, kv := newService(t)

	first := domain.WatchedEntry{ID: "tt1", Title: "One", UserRating: 7}
	entries, err := svc.Add(nil, first)
	require.NoError(t, err)
	entries, err = svc.Add(entries, domain.WatchedEntry{ID: "tt2", Title: "Two", UserRating: 9, AddedAt: 42})
	require.NoError(t, err)

	var stored []domain.WatchedEntry
	ok, err := kv.Get(domain.WatchedKey, &stored)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entries, stored)
	assert.Equal(t, int64(1700000000), stored[0].AddedAt)
	assert.Equal(t, int64(42), stored[1].AddedAt, "explicit timestamp kept")
}

func TestRemove_EmptiedListPersistsAsEmptyArray(t *testing.T) {
	svc, kv := newService(t)

	entries, err := svc.Add(nil, domain.WatchedEntry{ID: "tt1"})
	require.NoError(t, err)
	entries, err = svc.Remove(entries, "tt1")
	require.NoError(t, err)
	assert.Empty(t, entries)

	var raw json.RawMessage
	ok, err := kv.Get(domain.WatchedKey, &raw)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, "[]", string(raw))
}

func TestRemove_UnknownIDLeavesListUnchanged(t *testing.T) {
	svc, _ := newService(t)
	entries := []domain.WatchedEntry{{ID: "tt1"}, {ID: "tt2"}}

	next, err := svc.Remove(entries, "tt9")
	require.NoError(t, err)
	assert.Equal(t, entries, next)
}

type failingStore struct{}

func (failingStore) Get(string, any) (bool, error) { return false, errors.New("disk gone") }
func (failingStore) Set(string, any) error         { return errors.New("disk full") }
func (failingStore) Close() error                  { return nil }

func TestStoreFailuresStillReturnState(t *testing.T) {
	svc := NewService(failingStore{}, nil)

	entries, err := svc.Load()
	assert.Error(t, err)
	assert.NotNil(t, entries)

	next, err := svc.Add(nil, domain.WatchedEntry{ID: "tt1"})
	assert.ErrorContains(t, err, "disk full")
	assert.Len(t, next, 1)
}
