package builder_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogrepo "github.com/tair/drinkspot-pos/internal/catalog/repository"
	"github.com/tair/drinkspot-pos/internal/checkout/builder"
	"github.com/tair/drinkspot-pos/internal/checkout/domain"
	invdomain "github.com/tair/drinkspot-pos/internal/inventory/domain"
	"github.com/tair/drinkspot-pos/internal/inventory/ledger"
	"github.com/tair/drinkspot-pos/pkg/store"
)

type fixture struct {
	builder *builder.Builder
	ledger  *ledger.Ledger
}

func newFixture(t *testing.T, records []invdomain.InventoryRecord) fixture {
	t.Helper()
	ctx := context.Background()
	s := store.NewMemoryStore()

	catalog, err := catalogrepo.NewStoreCatalogRepository(ctx, s)
	require.NoError(t, err)

	l, err := ledger.New(ctx, s, records)
	require.NoError(t, err)

	b, err := builder.New(ctx, ledger.NewLedgerWithTracing(l), catalog, s)
	require.NoError(t, err)

	return fixture{builder: b, ledger: l}
}

func TestAddItem(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates line with catalog snapshot", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t, []invdomain.InventoryRecord{{ProductID: 1, Stock: 5}})

		require.NoError(t, f.builder.AddItem(ctx, 1))

		order := f.builder.Order()
		require.Len(t, order.Lines, 1)
		assert.Equal(t, "Espresso", order.Lines[0].Name)
		assert.InDelta(t, 2.50, order.Lines[0].Price, 1e-9)
		assert.Equal(t, 1, order.Lines[0].Quantity)
		assert.Equal(t, 4, f.ledger.Record(1).Stock)
	})

	t.Run("increments existing line", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t, []invdomain.InventoryRecord{{ProductID: 1, Stock: 5}})

		require.NoError(t, f.builder.AddItem(ctx, 1))
		require.NoError(t, f.builder.AddItem(ctx, 1))

		order := f.builder.Order()
		require.Len(t, order.Lines, 1)
		assert.Equal(t, 2, order.Lines[0].Quantity)
		assert.Equal(t, 3, f.ledger.Record(1).Stock)
	})

	t.Run("out of stock mutates nothing", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t, []invdomain.InventoryRecord{{ProductID: 1, Stock: 0}})

		err := f.builder.AddItem(ctx, 1)
		require.ErrorIs(t, err, domain.ErrOutOfStock)
		assert.Contains(t, err.Error(), "Espresso")
		assert.True(t, f.builder.Order().IsEmpty())
		assert.Equal(t, 0, f.ledger.Record(1).Stock)
	})

	t.Run("unknown product", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t, nil)

		err := f.builder.AddItem(ctx, 999)
		require.ErrorIs(t, err, domain.ErrUnknownProduct)
	})
}

func TestSetQuantity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("raising reserves the delta", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t, []invdomain.InventoryRecord{{ProductID: 1, Stock: 10}})
		require.NoError(t, f.builder.AddItem(ctx, 1))

		require.NoError(t, f.builder.SetQuantity(ctx, 1, 4))

		assert.Equal(t, 4, f.builder.Order().Lines[0].Quantity)
		assert.Equal(t, 6, f.ledger.Record(1).Stock)
	})

	t.Run("lowering releases the delta", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t, []invdomain.InventoryRecord{{ProductID: 1, Stock: 10}})
		require.NoError(t, f.builder.AddItem(ctx, 1))
		require.NoError(t, f.builder.SetQuantity(ctx, 1, 5))

		require.NoError(t, f.builder.SetQuantity(ctx, 1, 2))

		assert.Equal(t, 2, f.builder.Order().Lines[0].Quantity)
		assert.Equal(t, 8, f.ledger.Record(1).Stock)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t, []invdomain.InventoryRecord{{ProductID: 1, Stock: 10}})
		require.NoError(t, f.builder.AddItem(ctx, 1))
		require.NoError(t, f.builder.SetQuantity(ctx, 1, 3))

		require.NoError(t, f.builder.SetQuantity(ctx, 1, 0))

		assert.True(t, f.builder.Order().IsEmpty())
		assert.Equal(t, 10, f.ledger.Record(1).Stock)
	})

	t.Run("reservation failure leaves order unchanged", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t, []invdomain.InventoryRecord{{ProductID: 1, Stock: 3}})
		require.NoError(t, f.builder.AddItem(ctx, 1))

		err := f.builder.SetQuantity(ctx, 1, 10)
		require.ErrorIs(t, err, invdomain.ErrInsufficientStock)
		assert.Equal(t, 1, f.builder.Order().Lines[0].Quantity)
		assert.Equal(t, 2, f.ledger.Record(1).Stock)
	})

	t.Run("unknown line is a no-op", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t, []invdomain.InventoryRecord{{ProductID: 1, Stock: 3}})

		require.NoError(t, f.builder.SetQuantity(ctx, 1, 5))
		assert.True(t, f.builder.Order().IsEmpty())
		assert.Equal(t, 3, f.ledger.Record(1).Stock)
	})
}

func TestRemoveItem(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, []invdomain.InventoryRecord{{ProductID: 1, Stock: 10}})
	require.NoError(t, f.builder.AddItem(ctx, 1))
	require.NoError(t, f.builder.SetQuantity(ctx, 1, 4))

	require.NoError(t, f.builder.RemoveItem(ctx, 1))
	assert.True(t, f.builder.Order().IsEmpty())
	assert.Equal(t, 10, f.ledger.Record(1).Stock)

	// removing again is a no-op
	require.NoError(t, f.builder.RemoveItem(ctx, 1))
	assert.Equal(t, 10, f.ledger.Record(1).Stock)
}

func TestClear(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, []invdomain.InventoryRecord{
		{ProductID: 1, Stock: 10},
		{ProductID: 2, Stock: 10},
	})
	require.NoError(t, f.builder.AddItem(ctx, 1))
	require.NoError(t, f.builder.AddItem(ctx, 2))
	require.NoError(t, f.builder.SetQuantity(ctx, 2, 3))
	f.builder.SetDiscount(ctx, 20)

	require.NoError(t, f.builder.Clear(ctx))

	order := f.builder.Order()
	assert.True(t, order.IsEmpty())
	assert.Zero(t, order.DiscountPercent)
	assert.Equal(t, 10, f.ledger.Record(1).Stock)
	assert.Equal(t, 10, f.ledger.Record(2).Stock)

	// clearing an empty order changes nothing
	require.NoError(t, f.builder.Clear(ctx))
	assert.Equal(t, 10, f.ledger.Record(1).Stock)
}

func TestSetDiscountClamped(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, nil)

	f.builder.SetDiscount(ctx, -5)
	assert.Zero(t, f.builder.Order().DiscountPercent)

	f.builder.SetDiscount(ctx, 150)
	assert.InDelta(t, 100, f.builder.Order().DiscountPercent, 1e-9)
}

func TestTotalsUseOrderDiscount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, []invdomain.InventoryRecord{
		{ProductID: 1, Stock: 10},
		{ProductID: 2, Stock: 10},
	})
	require.NoError(t, f.builder.AddItem(ctx, 1))
	require.NoError(t, f.builder.SetQuantity(ctx, 1, 2))
	require.NoError(t, f.builder.AddItem(ctx, 2))
	f.builder.SetDiscount(ctx, 10)

	totals := f.builder.Totals(8.5)

	assert.InDelta(t, 8.50, totals.Subtotal, 1e-9)
	assert.InDelta(t, 0.7225, totals.Tax, 1e-9)
	assert.InDelta(t, 0.85, totals.DiscountAmount, 1e-9)
	assert.InDelta(t, 8.3725, totals.Total, 1e-9)
}

func TestOrderIsDeepCopy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, []invdomain.InventoryRecord{{ProductID: 1, Stock: 10}})
	require.NoError(t, f.builder.AddItem(ctx, 1))

	order := f.builder.Order()
	order.Lines[0].Quantity = 99

	assert.Equal(t, 1, f.builder.Order().Lines[0].Quantity)
}

func TestRestoreFromStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := store.NewMemoryStore()

	catalog, err := catalogrepo.NewStoreCatalogRepository(ctx, s)
	require.NoError(t, err)
	l, err := ledger.New(ctx, s, []invdomain.InventoryRecord{{ProductID: 1, Stock: 10}})
	require.NoError(t, err)

	b, err := builder.New(ctx, ledger.NewLedgerWithTracing(l), catalog, s)
	require.NoError(t, err)
	require.NoError(t, b.AddItem(ctx, 1))
	require.NoError(t, b.SetQuantity(ctx, 1, 3))
	b.SetDiscount(ctx, 5)

	// a new builder over the same store sees the same order, and the
	// persisted ledger already carries its reservations
	restoredLedger, err := ledger.New(ctx, s, nil)
	require.NoError(t, err)
	restored, err := builder.New(ctx, ledger.NewLedgerWithTracing(restoredLedger), catalog, s)
	require.NoError(t, err)

	order := restored.Order()
	require.Len(t, order.Lines, 1)
	assert.Equal(t, 3, order.Lines[0].Quantity)
	assert.InDelta(t, 5, order.DiscountPercent, 1e-9)
	assert.Equal(t, 7, restoredLedger.Record(1).Stock)
}

func TestFinalize(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty order", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t, nil)

		_, _, err := f.builder.Finalize(ctx, 8.5)
		require.ErrorIs(t, err, domain.ErrEmptyCart)
	})

	t.Run("snapshots prices and resets without releasing", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t, []invdomain.InventoryRecord{
			{ProductID: 1, Stock: 10},
			{ProductID: 2, Stock: 10},
		})
		require.NoError(t, f.builder.AddItem(ctx, 1))
		require.NoError(t, f.builder.SetQuantity(ctx, 1, 2))
		require.NoError(t, f.builder.AddItem(ctx, 2))
		f.builder.SetDiscount(ctx, 10)

		order, totals, err := f.builder.Finalize(ctx, 8.5)
		require.NoError(t, err)

		require.Len(t, order.Lines, 2)
		assert.Equal(t, 2, order.Lines[0].Quantity)
		assert.InDelta(t, 8.50, totals.Subtotal, 1e-9)
		assert.InDelta(t, 0.7225, totals.Tax, 1e-9)
		assert.InDelta(t, 0.85, totals.DiscountAmount, 1e-9)
		assert.InDelta(t, 8.3725, totals.Total, 1e-9)

		assert.True(t, f.builder.Order().IsEmpty())
		assert.Equal(t, 8, f.ledger.Record(1).Stock)
		assert.Equal(t, 9, f.ledger.Record(2).Stock)
	})

	t.Run("totals priced from the returned snapshot", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t, []invdomain.InventoryRecord{{ProductID: 1, Stock: 10}})
		require.NoError(t, f.builder.AddItem(ctx, 1))

		order, totals, err := f.builder.Finalize(ctx, 0)
		require.NoError(t, err)

		sum := 0.0
		for _, line := range order.Lines {
			sum += line.Price * float64(line.Quantity)
		}
		assert.InDelta(t, sum, totals.Subtotal, 1e-9)
		assert.InDelta(t, sum, totals.Total, 1e-9)
	})
}
