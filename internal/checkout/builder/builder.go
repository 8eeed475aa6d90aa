package builder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	catalogdomain "github.com/tair/drinkspot-pos/internal/catalog/domain"
	"github.com/tair/drinkspot-pos/internal/checkout/domain"
	invdomain "github.com/tair/drinkspot-pos/internal/inventory/domain"
	invledger "github.com/tair/drinkspot-pos/internal/inventory/ledger"
	"github.com/tair/drinkspot-pos/internal/pricing"
	"github.com/tair/drinkspot-pos/pkg/logger"
	"github.com/tair/drinkspot-pos/pkg/store"
)

// Builder owns the single live working order and keeps it consistent with
// the inventory ledger: every line-quantity change is paired with a
// reservation or release, under one mutex, so no observer ever sees a
// reservation without its line update or vice versa.
type Builder struct {
	mu      sync.Mutex
	ledger  *invledger.LedgerWithTracing
	catalog catalogdomain.CatalogRepository
	store   store.Store
	order   domain.WorkingOrder
}

// New restores the persisted working order, or starts with an empty one.
// A persisted order's reservations are already reflected in the persisted
// ledger, so restoring both keeps the conservation law intact.
func New(ctx context.Context, ledger *invledger.LedgerWithTracing, catalog catalogdomain.CatalogRepository, s store.Store) (*Builder, error) {
	b := &Builder{ledger: ledger, catalog: catalog, store: s}

	blob, err := s.Get(ctx, store.KeyCart)
	switch {
	case errors.Is(err, store.ErrNotFound):
		// fresh register, empty order
	case err != nil:
		return nil, fmt.Errorf("failed to load working order: %w", err)
	default:
		if err := json.Unmarshal(blob, &b.order); err != nil {
			return nil, fmt.Errorf("failed to decode working order: %w", err)
		}
	}

	return b, nil
}

// AddItem reserves one unit of the product and adds it to the order,
// creating a quantity-1 line with a name/price snapshot or incrementing the
// existing line. When the ledger refuses the reservation, nothing changes
// and ErrOutOfStock is reported.
func (b *Builder) AddItem(ctx context.Context, productID uint) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	product, err := b.catalog.FindByID(productID)
	if err != nil {
		return fmt.Errorf("%w: %d", domain.ErrUnknownProduct, productID)
	}

	if err := b.ledger.ReserveWithContext(ctx, productID, 1); err != nil {
		if errors.Is(err, invdomain.ErrInsufficientStock) {
			return fmt.Errorf("%s: %w", product.Name, domain.ErrOutOfStock)
		}
		return err
	}

	if line := b.order.Line(productID); line != nil {
		line.Quantity++
	} else {
		b.order.Lines = append(b.order.Lines, domain.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  1,
		})
	}

	b.persist(ctx)
	return nil
}

// SetQuantity moves a line to an absolute quantity, reserving or releasing
// the difference. A target of zero or less removes the line. A reservation
// failure leaves the order unchanged. Unknown lines are a no-op.
func (b *Builder) SetQuantity(ctx context.Context, productID uint, newQty int) error {
	if newQty <= 0 {
		return b.RemoveItem(ctx, productID)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	line := b.order.Line(productID)
	if line == nil {
		return nil
	}

	delta := newQty - line.Quantity
	switch {
	case delta > 0:
		if err := b.ledger.ReserveWithContext(ctx, productID, delta); err != nil {
			return err
		}
	case delta < 0:
		if err := b.ledger.ReleaseWithContext(ctx, productID, -delta); err != nil {
			return err
		}
	default:
		return nil
	}

	line.Quantity = newQty
	b.persist(ctx)
	return nil
}

// RemoveItem releases the line's full quantity back to the ledger and drops
// the line. Removing a product that has no line is a no-op.
func (b *Builder) RemoveItem(ctx context.Context, productID uint) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	line := b.order.Line(productID)
	if line == nil {
		return nil
	}

	if err := b.ledger.ReleaseWithContext(ctx, productID, line.Quantity); err != nil {
		return err
	}

	lines := b.order.Lines[:0]
	for _, l := range b.order.Lines {
		if l.ProductID != productID {
			lines = append(lines, l)
		}
	}
	b.order.Lines = lines

	b.persist(ctx)
	return nil
}

// Clear cancels the order: every line's quantity is released, the order is
// emptied and the discount reset. Stock returns to pre-order levels.
// Clearing an empty order changes nothing.
func (b *Builder) Clear(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, line := range b.order.Lines {
		if err := b.ledger.ReleaseWithContext(ctx, line.ProductID, line.Quantity); err != nil {
			return err
		}
	}

	b.order = domain.WorkingOrder{}
	b.persist(ctx)
	return nil
}

// SetDiscount sets the order discount, clamped to [0, 100].
func (b *Builder) SetDiscount(ctx context.Context, percent float64) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.order.DiscountPercent = percent
	b.persist(ctx)
}

// Finalize snapshots the order, prices it under the given tax rate, and
// empties it, all in one critical section. Mutations landing while a sale
// is being recorded therefore either appear in the snapshot or survive into
// the next order; a reservation can never be wiped without being sold.
// Nothing is released: the snapshot's reservations became permanent.
// Finalizing an empty order fails with ErrEmptyCart.
func (b *Builder) Finalize(ctx context.Context, taxRatePercent float64) (domain.WorkingOrder, pricing.Totals, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.order.IsEmpty() {
		return domain.WorkingOrder{}, pricing.Totals{}, domain.ErrEmptyCart
	}

	order := b.copyOrderLocked()

	lines := make([]pricing.Line, len(order.Lines))
	for i, l := range order.Lines {
		lines[i] = pricing.Line{Price: l.Price, Quantity: l.Quantity}
	}
	totals := pricing.ComputeTotals(lines, taxRatePercent, order.DiscountPercent)

	b.order = domain.WorkingOrder{}
	b.persist(ctx)

	return order, totals, nil
}

// Order returns a deep copy of the current working order.
func (b *Builder) Order() domain.WorkingOrder {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.copyOrderLocked()
}

// Totals prices the current order under the given tax rate.
func (b *Builder) Totals(taxRatePercent float64) pricing.Totals {
	b.mu.Lock()
	defer b.mu.Unlock()

	lines := make([]pricing.Line, len(b.order.Lines))
	for i, l := range b.order.Lines {
		lines[i] = pricing.Line{Price: l.Price, Quantity: l.Quantity}
	}

	return pricing.ComputeTotals(lines, taxRatePercent, b.order.DiscountPercent)
}

func (b *Builder) copyOrderLocked() domain.WorkingOrder {
	out := domain.WorkingOrder{DiscountPercent: b.order.DiscountPercent}
	if len(b.order.Lines) > 0 {
		out.Lines = make([]domain.CartLine, len(b.order.Lines))
		copy(out.Lines, b.order.Lines)
	}
	return out
}

// persist writes the order to the blob store; failures are logged and do not
// fail the mutation. Callers hold the mutex.
func (b *Builder) persist(ctx context.Context) {
	blob, err := json.Marshal(b.order)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode working order")
		return
	}
	if err := b.store.Set(ctx, store.KeyCart, blob); err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to persist working order")
	}
}
