package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/tair/drinkspot-pos/internal/inventory/domain"
	"github.com/tair/drinkspot-pos/pkg/logger"
	"github.com/tair/drinkspot-pos/pkg/store"
)

// Ledger is the in-memory authoritative stock ledger, persisted to the blob
// store after every successful mutation. All mutation runs under one mutex:
// the engine serves concurrent HTTP callers, and the non-negative stock
// invariant requires a single writer.
type Ledger struct {
	mu      sync.Mutex
	store   store.Store
	records map[uint]*domain.InventoryRecord
	order   []uint
}

// New loads the ledger from the blob store. When the store holds no
// inventory yet, the given seed records are installed and persisted.
func New(ctx context.Context, s store.Store, seed []domain.InventoryRecord) (*Ledger, error) {
	l := &Ledger{
		store:   s,
		records: make(map[uint]*domain.InventoryRecord),
	}

	blob, err := s.Get(ctx, store.KeyInventory)
	switch {
	case errors.Is(err, store.ErrNotFound):
		for _, rec := range seed {
			l.put(rec)
		}
		l.persist(ctx)
		logger.Logger.Info().Int("records", len(seed)).Msg("Inventory ledger seeded")
	case err != nil:
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	default:
		var records []domain.InventoryRecord
		if err := json.Unmarshal(blob, &records); err != nil {
			return nil, fmt.Errorf("failed to decode inventory: %w", err)
		}
		for _, rec := range records {
			l.put(rec)
		}
	}

	return l, nil
}

// put installs a record without locking; callers hold the mutex or run
// during construction.
func (l *Ledger) put(rec domain.InventoryRecord) {
	if _, ok := l.records[rec.ProductID]; !ok {
		l.order = append(l.order, rec.ProductID)
	}
	r := rec
	l.records[rec.ProductID] = &r
}

// Reserve decrements stock by qty on behalf of a working-order line. It is
// all-or-nothing: when qty exceeds the available stock the ledger is left
// untouched and ErrInsufficientStock is returned.
func (l *Ledger) Reserve(ctx context.Context, productID uint, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, qty)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[productID]
	if !ok || rec.Stock < qty {
		return fmt.Errorf("product %d: %w", productID, domain.ErrInsufficientStock)
	}

	rec.Stock -= qty
	l.persist(ctx)
	return nil
}

// Release returns a previously reserved quantity to stock. It always
// succeeds; releasing more than was reserved is a caller bug the ledger does
// not guard against.
func (l *Ledger) Release(ctx context.Context, productID uint, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, qty)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[productID]
	if !ok {
		l.put(domain.InventoryRecord{ProductID: productID})
		rec = l.records[productID]
	}

	rec.Stock += qty
	l.persist(ctx)
	return nil
}

// Record returns the record for a product. Unknown products read as a
// zero-stock, zero-threshold default rather than an error.
func (l *Ledger) Record(productID uint) domain.InventoryRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	if rec, ok := l.records[productID]; ok {
		return *rec
	}
	return domain.InventoryRecord{ProductID: productID}
}

// AdjustStock applies a direct administrative stock change outside the
// reserve/release discipline. The adjustment fails when it would drive
// stock negative.
func (l *Ledger) AdjustStock(ctx context.Context, productID uint, delta int) (domain.InventoryRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[productID]
	if !ok {
		l.put(domain.InventoryRecord{ProductID: productID})
		rec = l.records[productID]
	}

	if rec.Stock+delta < 0 {
		return *rec, fmt.Errorf("product %d: adjustment %d would drive stock below zero", productID, delta)
	}

	rec.Stock += delta
	l.persist(ctx)
	return *rec, nil
}

// SetRecord replaces a record wholesale (admin edit of stock and threshold).
func (l *Ledger) SetRecord(ctx context.Context, record domain.InventoryRecord) error {
	if record.Stock < 0 || record.Threshold < 0 {
		return fmt.Errorf("product %d: stock and threshold must not be negative", record.ProductID)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.put(record)
	l.persist(ctx)
	return nil
}

// Snapshot returns a copy of every record in stable (creation) order.
func (l *Ledger) Snapshot() []domain.InventoryRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.snapshotLocked()
}

func (l *Ledger) snapshotLocked() []domain.InventoryRecord {
	out := make([]domain.InventoryRecord, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, *l.records[id])
	}
	return out
}

// persist writes the ledger to the blob store. Failures are logged and never
// rolled back into the in-memory state. Callers hold the mutex.
func (l *Ledger) persist(ctx context.Context) {
	blob, err := json.Marshal(l.snapshotLocked())
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode inventory")
		return
	}
	if err := l.store.Set(ctx, store.KeyInventory, blob); err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to persist inventory")
	}
}

// DefaultRecords returns the stock levels installed on first start, matching
// the seeded catalog.
func DefaultRecords() []domain.InventoryRecord {
	return []domain.InventoryRecord{
		{ProductID: 1, Stock: 100, Threshold: 10},
		{ProductID: 2, Stock: 80, Threshold: 10},
		{ProductID: 3, Stock: 50, Threshold: 5},
		{ProductID: 4, Stock: 60, Threshold: 5},
		{ProductID: 5, Stock: 8, Threshold: 10},
		{ProductID: 6, Stock: 75, Threshold: 10},
		{ProductID: 7, Stock: 150, Threshold: 20},
		{ProductID: 8, Stock: 70, Threshold: 10},
	}
}
