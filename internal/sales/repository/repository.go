package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/tair/drinkspot-pos/internal/sales/domain"
	"github.com/tair/drinkspot-pos/pkg/logger"
	"github.com/tair/drinkspot-pos/pkg/store"
)

// StoreSaleRepository keeps the sales log in memory and mirrors it to the
// blob store after every append. The log is append-only: nothing here can
// mutate or drop an entry once written.
type StoreSaleRepository struct {
	mu    sync.RWMutex
	store store.Store
	sales []domain.Sale
}

// NewStoreSaleRepository loads the existing sales log, starting empty when
// the store has none.
func NewStoreSaleRepository(ctx context.Context, s store.Store) (*StoreSaleRepository, error) {
	r := &StoreSaleRepository{store: s}

	blob, err := s.Get(ctx, store.KeySales)
	switch {
	case errors.Is(err, store.ErrNotFound):
		// first run, empty log
	case err != nil:
		return nil, fmt.Errorf("failed to load sales log: %w", err)
	default:
		if err := json.Unmarshal(blob, &r.sales); err != nil {
			return nil, fmt.Errorf("failed to decode sales log: %w", err)
		}
	}

	return r, nil
}

// Append adds a sale to the end of the log and persists the log. A store
// failure is logged, not surfaced: the in-memory append stands.
func (r *StoreSaleRepository) Append(sale *domain.Sale) error {
	if sale == nil {
		return fmt.Errorf("sale is required")
	}
	if sale.ID == "" {
		return fmt.Errorf("sale id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// deep copy: the log owns its items, callers keep theirs
	record := *sale
	record.Items = make([]domain.SaleItem, len(sale.Items))
	copy(record.Items, sale.Items)
	r.sales = append(r.sales, record)

	blob, err := json.Marshal(r.sales)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode sales log")
		return nil
	}
	if err := r.store.Set(context.Background(), store.KeySales, blob); err != nil {
		logger.Logger.Warn().Err(err).Str("sale_id", sale.ID).Msg("Failed to persist sales log")
	}

	return nil
}

// FindAll returns a copy of the log in insertion (chronological) order.
func (r *StoreSaleRepository) FindAll() ([]domain.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Sale, len(r.sales))
	copy(out, r.sales)
	return out, nil
}

// Count returns the number of recorded sales.
func (r *StoreSaleRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sales), nil
}
