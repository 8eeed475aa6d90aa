package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/tair/drinkspot-pos/internal/catalog/domain"
	"github.com/tair/drinkspot-pos/pkg/logger"
	"github.com/tair/drinkspot-pos/pkg/store"
)

// ErrProductNotFound is returned when no catalog entry exists for an id.
var ErrProductNotFound = errors.New("product not found")

// StoreCatalogRepository serves the product catalog from the blob store.
// Products are loaded once at startup; the engine treats the catalog as
// read-only.
type StoreCatalogRepository struct {
	mu       sync.RWMutex
	store    store.Store
	products []domain.Product
	byID     map[uint]int
}

// NewStoreCatalogRepository loads the catalog, seeding the store with the
// default product list when it holds no catalog yet.
func NewStoreCatalogRepository(ctx context.Context, s store.Store) (*StoreCatalogRepository, error) {
	r := &StoreCatalogRepository{store: s}

	blob, err := s.Get(ctx, store.KeyProducts)
	switch {
	case errors.Is(err, store.ErrNotFound):
		r.products = SeedProducts()
		if data, merr := json.Marshal(r.products); merr == nil {
			if serr := s.Set(ctx, store.KeyProducts, data); serr != nil {
				logger.Logger.Warn().Err(serr).Msg("Failed to persist seeded catalog")
			}
		}
		logger.Logger.Info().Int("count", len(r.products)).Msg("Catalog seeded with default products")
	case err != nil:
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	default:
		if err := json.Unmarshal(blob, &r.products); err != nil {
			return nil, fmt.Errorf("failed to decode catalog: %w", err)
		}
	}

	r.byID = make(map[uint]int, len(r.products))
	for i, p := range r.products {
		r.byID[p.ID] = i
	}

	return r, nil
}

func (r *StoreCatalogRepository) FindByID(id uint) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrProductNotFound, id)
	}

	p := r.products[i]
	return &p, nil
}

func (r *StoreCatalogRepository) FindAll() ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}
