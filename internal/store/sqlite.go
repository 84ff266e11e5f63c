package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/mmcdole/popcorn/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// kvEntry is one JSON value keyed by name
type kvEntry struct {
	Key       string    `gorm:"column:kv_key;primaryKey"`
	Value     string    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides the table name
func (kvEntry) TableName() string {
	return "kv_entries"
}

// SQLStore implements domain.KVStore on a SQLite database through GORM
type SQLStore struct {
	db *gorm.DB
}

// NewSQLStore opens (creating if needed) the SQLite database at path
func NewSQLStore(path string) (*SQLStore, error) {
	if path == "" {
		return nil, errors.New("sqlite store requires a path")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Configure GORM
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(path), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single writer; the TUI serialises all writes anyway
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &SQLStore{db: db}, nil
}

// Get decodes the value under key into dest; ok is false when absent
func (s *SQLStore) Get(key string, dest any) (bool, error) {
	if s.db == nil {
		return false, domain.ErrStoreClosed
	}

	var entry kvEntry
	err := s.db.Where("kv_key = ?", key).Limit(1).Find(&entry).Error
	if err != nil {
		return false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	if entry.Key == "" {
		return false, nil
	}
	return true, decode(key, []byte(entry.Value), dest)
}

// Set upserts the value under key
func (s *SQLStore) Set(key string, value any) error {
	if s.db == nil {
		return domain.ErrStoreClosed
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}

	entry := kvEntry{Key: key, Value: string(data)}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kv_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	s.db = nil
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
