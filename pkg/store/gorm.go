package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/drinkspot-pos/pkg/logger"
)

// Blob is a single persisted key-value row.
type Blob struct {
	Key       string    `gorm:"primaryKey;size:128"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name
func (Blob) TableName() string {
	return "pos_blobs"
}

// GormStore persists blobs in a single Postgres table via GORM.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the blob table and returns a Postgres-backed store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Blob{}); err != nil {
		return nil, fmt.Errorf("failed to migrate blob table: %w", err)
	}

	logger.Logger.Info().Msg("Postgres blob store initialized")
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var blob Blob
	err := s.db.WithContext(ctx).First(&blob, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("blob get %q: %w", key, err)
	}
	return blob.Value, nil
}

func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	blob := Blob{Key: key, Value: value}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&blob).Error
	if err != nil {
		return fmt.Errorf("blob set %q: %w", key, err)
	}
	return nil
}
