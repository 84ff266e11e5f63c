package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mmcdole/popcorn/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var bucketKV = []byte("kv")

// BoltStore implements domain.KVStore using BoltDB.
// An empty path runs in memory-only mode.
type BoltStore struct {
	db     *bolt.DB
	mu     sync.RWMutex // Protects memory cache and closed
	closed bool

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

func NewBoltStore(path string) (*BoltStore, error) {
	if path == "" {
		// Memory-only mode (no persistence)
		return &BoltStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	// Create buckets
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketKV)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db, cache: make(map[string][]byte)}, nil
}

func (s *BoltStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get decodes the value under key into dest; ok is false when absent
func (s *BoltStore) Get(key string, dest any) (bool, error) {
	// Check memory cache first
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return false, domain.ErrStoreClosed
	}
	if data, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return true, decode(key, data, dest)
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false, nil
	}

	// Read from BoltDB
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketKV)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to read %q: %w", key, err)
	}

	if data == nil {
		return false, nil
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	return true, decode(key, data, dest)
}

// Set replaces the value under key
func (s *BoltStore) Set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrStoreClosed
	}
	s.mu.Unlock()

	if s.db != nil {
		// Write to BoltDB before the cache so a failed write is not visible
		err = s.db.Update(func(tx *bolt.Tx) error {
			return tx.Bucket(bucketKV).Put([]byte(key), data)
		})
		if err != nil {
			return fmt.Errorf("failed to write %q: %w", key, err)
		}
	}

	// Update memory cache
	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()
	return nil
}

func decode(key string, data []byte, dest any) error {
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode %q: %w", key, err)
	}
	return nil
}
