package store

import (
	"fmt"

	"github.com/mmcdole/popcorn/internal/adapter"
	"github.com/mmcdole/popcorn/internal/domain"
)

// Open creates the KVStore selected by cfg.Backend
func Open(cfg adapter.StorageConfig) (domain.KVStore, error) {
	switch cfg.Backend {
	case adapter.StorageBolt, "":
		return NewBoltStore(cfg.StoragePath())
	case adapter.StorageSQLite:
		return NewSQLStore(cfg.StoragePath())
	case adapter.StorageMemory:
		return NewBoltStore("")
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
