package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/tair/drinkspot-pos/internal/settings/domain"
	"github.com/tair/drinkspot-pos/pkg/logger"
	"github.com/tair/drinkspot-pos/pkg/store"
)

// StoreSettingsRepository serves settings from the blob store, installing
// the defaults on first start.
type StoreSettingsRepository struct {
	mu       sync.RWMutex
	settings domain.Settings
}

// NewStoreSettingsRepository loads settings from the store.
func NewStoreSettingsRepository(ctx context.Context, s store.Store) (*StoreSettingsRepository, error) {
	r := &StoreSettingsRepository{}

	blob, err := s.Get(ctx, store.KeySettings)
	switch {
	case errors.Is(err, store.ErrNotFound):
		r.settings = domain.Defaults()
		if data, merr := json.Marshal(r.settings); merr == nil {
			if serr := s.Set(ctx, store.KeySettings, data); serr != nil {
				logger.Logger.Warn().Err(serr).Msg("Failed to persist default settings")
			}
		}
	case err != nil:
		return nil, fmt.Errorf("failed to load settings: %w", err)
	default:
		if err := json.Unmarshal(blob, &r.settings); err != nil {
			return nil, fmt.Errorf("failed to decode settings: %w", err)
		}
	}

	return r, nil
}

// Get returns the current settings.
func (r *StoreSettingsRepository) Get() domain.Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.settings
}
