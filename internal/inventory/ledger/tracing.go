package ledger

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/drinkspot-pos/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-ledger")

// LedgerWithTracing wraps Ledger with per-operation spans
type LedgerWithTracing struct {
	*Ledger
}

// NewLedgerWithTracing creates a traced ledger wrapper
func NewLedgerWithTracing(l *Ledger) *LedgerWithTracing {
	return &LedgerWithTracing{Ledger: l}
}

// ReserveWithContext reserves stock under a span
func (l *LedgerWithTracing) ReserveWithContext(ctx context.Context, productID uint, qty int) error {
	ctx, span := tracer.Start(ctx, "ledger.Reserve",
		trace.WithAttributes(
			attribute.Int("inventory.product_id", int(productID)),
			attribute.Int("inventory.quantity", qty),
		),
	)
	defer span.End()

	err := l.Ledger.Reserve(ctx, productID, qty)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// ReleaseWithContext releases stock under a span
func (l *LedgerWithTracing) ReleaseWithContext(ctx context.Context, productID uint, qty int) error {
	ctx, span := tracer.Start(ctx, "ledger.Release",
		trace.WithAttributes(
			attribute.Int("inventory.product_id", int(productID)),
			attribute.Int("inventory.quantity", qty),
		),
	)
	defer span.End()

	err := l.Ledger.Release(ctx, productID, qty)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// AdjustStockWithContext applies an admin adjustment under a span
func (l *LedgerWithTracing) AdjustStockWithContext(ctx context.Context, productID uint, delta int) (domain.InventoryRecord, error) {
	ctx, span := tracer.Start(ctx, "ledger.AdjustStock",
		trace.WithAttributes(
			attribute.Int("inventory.product_id", int(productID)),
			attribute.Int("inventory.delta", delta),
		),
	)
	defer span.End()

	rec, err := l.Ledger.AdjustStock(ctx, productID, delta)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return rec, err
	}

	span.SetAttributes(attribute.Int("inventory.stock", rec.Stock))
	return rec, nil
}
