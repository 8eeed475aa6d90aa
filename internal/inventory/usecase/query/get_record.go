package query

import (
	"fmt"

	"github.com/tair/drinkspot-pos/internal/inventory/domain"
)

// GetRecordQuery represents the query to get one inventory record
type GetRecordQuery struct {
	ProductID uint
}

// GetRecordHandler handles get record query
type GetRecordHandler struct {
	ledger domain.Ledger
}

// NewGetRecordHandler creates a new get record handler
func NewGetRecordHandler(ledger domain.Ledger) *GetRecordHandler {
	return &GetRecordHandler{ledger: ledger}
}

// Handle executes the get record query. Lookups are lenient: an unknown
// product yields a zero-stock, zero-threshold record.
func (h *GetRecordHandler) Handle(query GetRecordQuery) (*domain.InventoryRecord, error) {
	if query.ProductID == 0 {
		return nil, fmt.Errorf("product_id is required")
	}

	rec := h.ledger.Record(query.ProductID)
	return &rec, nil
}
