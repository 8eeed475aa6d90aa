package query_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/drinkspot-pos/internal/analytics/usecase/query"
	catalogrepo "github.com/tair/drinkspot-pos/internal/catalog/repository"
	invdomain "github.com/tair/drinkspot-pos/internal/inventory/domain"
	"github.com/tair/drinkspot-pos/internal/inventory/ledger"
	"github.com/tair/drinkspot-pos/pkg/store"
)

func newLowStockHandler(t *testing.T, records []invdomain.InventoryRecord) *query.LowStockHandler {
	t.Helper()
	ctx := context.Background()
	s := store.NewMemoryStore()

	catalog, err := catalogrepo.NewStoreCatalogRepository(ctx, s)
	require.NoError(t, err)
	l, err := ledger.New(ctx, s, records)
	require.NoError(t, err)

	return query.NewLowStockHandler(l, catalog)
}

func TestLowStock(t *testing.T) {
	t.Parallel()

	t.Run("threshold boundary", func(t *testing.T) {
		t.Parallel()

		handler := newLowStockHandler(t, []invdomain.InventoryRecord{
			{ProductID: 1, Stock: 10, Threshold: 10},
			{ProductID: 2, Stock: 11, Threshold: 10},
		})

		items, err := handler.Handle(query.LowStockQuery{})
		require.NoError(t, err)

		require.Len(t, items, 1)
		assert.Equal(t, uint(1), items[0].ProductID)
		assert.Equal(t, "Espresso", items[0].Name)
	})

	t.Run("sorted ascending by stock", func(t *testing.T) {
		t.Parallel()

		handler := newLowStockHandler(t, []invdomain.InventoryRecord{
			{ProductID: 1, Stock: 8, Threshold: 10},
			{ProductID: 2, Stock: 2, Threshold: 10},
			{ProductID: 3, Stock: 5, Threshold: 10},
		})

		items, err := handler.Handle(query.LowStockQuery{})
		require.NoError(t, err)

		require.Len(t, items, 3)
		assert.Equal(t, 2, items[0].Stock)
		assert.Equal(t, 5, items[1].Stock)
		assert.Equal(t, 8, items[2].Stock)
	})

	t.Run("record without catalog entry", func(t *testing.T) {
		t.Parallel()

		handler := newLowStockHandler(t, []invdomain.InventoryRecord{
			{ProductID: 999, Stock: 0, Threshold: 10},
		})

		items, err := handler.Handle(query.LowStockQuery{})
		require.NoError(t, err)

		require.Len(t, items, 1)
		assert.Equal(t, "Unknown Product", items[0].Name)
	})

	t.Run("nothing low", func(t *testing.T) {
		t.Parallel()

		handler := newLowStockHandler(t, []invdomain.InventoryRecord{
			{ProductID: 1, Stock: 100, Threshold: 10},
		})

		items, err := handler.Handle(query.LowStockQuery{})
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}
