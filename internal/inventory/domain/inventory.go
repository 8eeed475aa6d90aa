package domain

import (
	"context"
	"errors"
)

// InventoryRecord tracks the authoritative stock counter for one product.
// Stock never goes negative: it only decreases through a successful
// reservation and only increases through a release or an admin adjustment.
type InventoryRecord struct {
	ProductID uint `json:"product_id"`
	Stock     int  `json:"stock"`
	Threshold int  `json:"threshold"`
}

// IsLowStock reports whether the record is at or below its threshold.
func (r InventoryRecord) IsLowStock() bool {
	return r.Stock <= r.Threshold
}

// Ledger errors.
var (
	// ErrInsufficientStock is returned by Reserve when the requested
	// quantity exceeds the available stock. The ledger is left untouched.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidQuantity is returned when a reserve/release quantity is
	// not positive.
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// Ledger is the only component allowed to change stock. Lookups are lenient:
// a product without a record reads as zero stock, zero threshold.
type Ledger interface {
	Reserve(ctx context.Context, productID uint, qty int) error
	Release(ctx context.Context, productID uint, qty int) error
	Record(productID uint) InventoryRecord
	AdjustStock(ctx context.Context, productID uint, delta int) (InventoryRecord, error)
	SetRecord(ctx context.Context, record InventoryRecord) error
	Snapshot() []InventoryRecord
}
