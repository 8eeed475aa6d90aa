package command

import (
	"context"
	"fmt"

	"github.com/tair/drinkspot-pos/internal/inventory/domain"
	"github.com/tair/drinkspot-pos/internal/inventory/ledger"
)

// AdjustStockCommand represents the command to apply an admin stock change
type AdjustStockCommand struct {
	ProductID uint
	Delta     int
}

// AdjustStockHandler handles adjust stock command
type AdjustStockHandler struct {
	ledger *ledger.LedgerWithTracing
}

// NewAdjustStockHandler creates a new adjust stock handler
func NewAdjustStockHandler(l *ledger.LedgerWithTracing) *AdjustStockHandler {
	return &AdjustStockHandler{ledger: l}
}

// Handle executes the adjust stock command
func (h *AdjustStockHandler) Handle(ctx context.Context, cmd AdjustStockCommand) (*domain.InventoryRecord, error) {
	if cmd.ProductID == 0 {
		return nil, fmt.Errorf("product_id is required")
	}

	if cmd.Delta == 0 {
		return nil, fmt.Errorf("delta must not be zero")
	}

	rec, err := h.ledger.AdjustStockWithContext(ctx, cmd.ProductID, cmd.Delta)
	if err != nil {
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	return &rec, nil
}
