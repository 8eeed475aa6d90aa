package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/drinkspot-pos/internal/inventory/domain"
	"github.com/tair/drinkspot-pos/internal/inventory/ledger"
	"github.com/tair/drinkspot-pos/pkg/store"
)

func newLedger(t *testing.T, seed []domain.InventoryRecord) *ledger.Ledger {
	t.Helper()

	l, err := ledger.New(context.Background(), store.NewMemoryStore(), seed)
	require.NoError(t, err)
	return l
}

func TestReserve(t *testing.T) {
	t.Parallel()

	t.Run("decrements stock", func(t *testing.T) {
		t.Parallel()

		l := newLedger(t, []domain.InventoryRecord{{ProductID: 1, Stock: 10, Threshold: 2}})

		require.NoError(t, l.Reserve(context.Background(), 1, 3))
		assert.Equal(t, 7, l.Record(1).Stock)
	})

	t.Run("insufficient stock leaves ledger untouched", func(t *testing.T) {
		t.Parallel()

		l := newLedger(t, []domain.InventoryRecord{{ProductID: 1, Stock: 2}})

		err := l.Reserve(context.Background(), 1, 3)
		require.ErrorIs(t, err, domain.ErrInsufficientStock)
		assert.Equal(t, 2, l.Record(1).Stock)
	})

	t.Run("unknown product reads as zero stock", func(t *testing.T) {
		t.Parallel()

		l := newLedger(t, nil)

		err := l.Reserve(context.Background(), 99, 1)
		require.ErrorIs(t, err, domain.ErrInsufficientStock)
	})

	t.Run("exact remaining stock succeeds", func(t *testing.T) {
		t.Parallel()

		l := newLedger(t, []domain.InventoryRecord{{ProductID: 1, Stock: 5}})

		require.NoError(t, l.Reserve(context.Background(), 1, 5))
		assert.Equal(t, 0, l.Record(1).Stock)

		err := l.Reserve(context.Background(), 1, 1)
		require.ErrorIs(t, err, domain.ErrInsufficientStock)
	})

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		t.Parallel()

		l := newLedger(t, []domain.InventoryRecord{{ProductID: 1, Stock: 5}})

		require.ErrorIs(t, l.Reserve(context.Background(), 1, 0), domain.ErrInvalidQuantity)
		require.ErrorIs(t, l.Reserve(context.Background(), 1, -2), domain.ErrInvalidQuantity)
	})
}

func TestRelease(t *testing.T) {
	t.Parallel()

	t.Run("restores reserved stock", func(t *testing.T) {
		t.Parallel()

		l := newLedger(t, []domain.InventoryRecord{{ProductID: 1, Stock: 10}})

		require.NoError(t, l.Reserve(context.Background(), 1, 4))
		require.NoError(t, l.Release(context.Background(), 1, 4))
		assert.Equal(t, 10, l.Record(1).Stock)
	})

	t.Run("creates record for unknown product", func(t *testing.T) {
		t.Parallel()

		l := newLedger(t, nil)

		require.NoError(t, l.Release(context.Background(), 42, 3))
		assert.Equal(t, 3, l.Record(42).Stock)
	})
}

func TestRecordLookup(t *testing.T) {
	t.Parallel()

	l := newLedger(t, []domain.InventoryRecord{{ProductID: 1, Stock: 6, Threshold: 4}})

	rec := l.Record(1)
	assert.Equal(t, 6, rec.Stock)
	assert.Equal(t, 4, rec.Threshold)

	missing := l.Record(7)
	assert.Equal(t, uint(7), missing.ProductID)
	assert.Zero(t, missing.Stock)
	assert.Zero(t, missing.Threshold)
}

func TestAdjustStock(t *testing.T) {
	t.Parallel()

	t.Run("applies signed delta", func(t *testing.T) {
		t.Parallel()

		l := newLedger(t, []domain.InventoryRecord{{ProductID: 1, Stock: 10}})

		rec, err := l.AdjustStock(context.Background(), 1, 5)
		require.NoError(t, err)
		assert.Equal(t, 15, rec.Stock)

		rec, err = l.AdjustStock(context.Background(), 1, -15)
		require.NoError(t, err)
		assert.Equal(t, 0, rec.Stock)
	})

	t.Run("refuses to drive stock negative", func(t *testing.T) {
		t.Parallel()

		l := newLedger(t, []domain.InventoryRecord{{ProductID: 1, Stock: 3}})

		_, err := l.AdjustStock(context.Background(), 1, -4)
		require.Error(t, err)
		assert.Equal(t, 3, l.Record(1).Stock)
	})
}

func TestSetRecord(t *testing.T) {
	t.Parallel()

	l := newLedger(t, nil)

	require.NoError(t, l.SetRecord(context.Background(), domain.InventoryRecord{ProductID: 9, Stock: 25, Threshold: 5}))
	assert.Equal(t, 25, l.Record(9).Stock)

	require.Error(t, l.SetRecord(context.Background(), domain.InventoryRecord{ProductID: 9, Stock: -1}))
	require.Error(t, l.SetRecord(context.Background(), domain.InventoryRecord{ProductID: 9, Threshold: -1}))
}

func TestSnapshotOrder(t *testing.T) {
	t.Parallel()

	l := newLedger(t, []domain.InventoryRecord{
		{ProductID: 3, Stock: 1},
		{ProductID: 1, Stock: 2},
		{ProductID: 2, Stock: 3},
	})

	snap := l.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, uint(3), snap[0].ProductID)
	assert.Equal(t, uint(1), snap[1].ProductID)
	assert.Equal(t, uint(2), snap[2].ProductID)
}

func TestPersistenceRoundTrip(t *testing.T) {
	t.Parallel()

	s := store.NewMemoryStore()
	ctx := context.Background()

	l, err := ledger.New(ctx, s, []domain.InventoryRecord{{ProductID: 1, Stock: 10, Threshold: 2}})
	require.NoError(t, err)
	require.NoError(t, l.Reserve(context.Background(), 1, 4))

	reloaded, err := ledger.New(ctx, s, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, reloaded.Record(1).Stock)
	assert.Equal(t, 2, reloaded.Record(1).Threshold)
}

func TestConservation(t *testing.T) {
	t.Parallel()

	l := newLedger(t, []domain.InventoryRecord{{ProductID: 1, Stock: 20}})

	reserved := 0
	for i := 0; i < 5; i++ {
		require.NoError(t, l.Reserve(context.Background(), 1, 2))
		reserved += 2
	}
	require.NoError(t, l.Release(context.Background(), 1, 4))
	reserved -= 4

	assert.Equal(t, 20, l.Record(1).Stock+reserved)
}

type ctxKey struct{}

// contextRecordingStore captures the context handed to Set so tests can
// check that mutations persist under the caller's request context.
type contextRecordingStore struct {
	store.Store
	lastSet context.Context
}

func (s *contextRecordingStore) Set(ctx context.Context, key string, value []byte) error {
	s.lastSet = ctx
	return s.Store.Set(ctx, key, value)
}

func TestMutationsPersistWithCallerContext(t *testing.T) {
	t.Parallel()

	rs := &contextRecordingStore{Store: store.NewMemoryStore()}
	l, err := ledger.New(context.Background(), rs, []domain.InventoryRecord{{ProductID: 1, Stock: 10}})
	require.NoError(t, err)

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-7")

	require.NoError(t, l.Reserve(ctx, 1, 2))
	assert.Equal(t, "req-7", rs.lastSet.Value(ctxKey{}))

	require.NoError(t, l.Release(ctx, 1, 1))
	assert.Equal(t, "req-7", rs.lastSet.Value(ctxKey{}))

	_, err = l.AdjustStock(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, "req-7", rs.lastSet.Value(ctxKey{}))

	require.NoError(t, l.SetRecord(ctx, domain.InventoryRecord{ProductID: 2, Stock: 5}))
	assert.Equal(t, "req-7", rs.lastSet.Value(ctxKey{}))
}
