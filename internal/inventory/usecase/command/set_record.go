package command

import (
	"context"
	"fmt"

	"github.com/tair/drinkspot-pos/internal/inventory/domain"
)

// SetRecordCommand represents the command to replace an inventory record
type SetRecordCommand struct {
	ProductID uint
	Stock     int
	Threshold int
}

// SetRecordHandler handles set record command
type SetRecordHandler struct {
	ledger domain.Ledger
}

// NewSetRecordHandler creates a new set record handler
func NewSetRecordHandler(ledger domain.Ledger) *SetRecordHandler {
	return &SetRecordHandler{ledger: ledger}
}

// Handle executes the set record command
func (h *SetRecordHandler) Handle(ctx context.Context, cmd SetRecordCommand) (*domain.InventoryRecord, error) {
	if cmd.ProductID == 0 {
		return nil, fmt.Errorf("product_id is required")
	}

	rec := domain.InventoryRecord{
		ProductID: cmd.ProductID,
		Stock:     cmd.Stock,
		Threshold: cmd.Threshold,
	}

	if err := h.ledger.SetRecord(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to set inventory record: %w", err)
	}

	return &rec, nil
}
