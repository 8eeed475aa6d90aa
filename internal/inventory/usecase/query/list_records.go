package query

import "github.com/tair/drinkspot-pos/internal/inventory/domain"

// ListRecordsQuery represents the query to snapshot the ledger
type ListRecordsQuery struct{}

// ListRecordsHandler handles list records query
type ListRecordsHandler struct {
	ledger domain.Ledger
}

// NewListRecordsHandler creates a new list records handler
func NewListRecordsHandler(ledger domain.Ledger) *ListRecordsHandler {
	return &ListRecordsHandler{ledger: ledger}
}

// Handle executes the list records query
func (h *ListRecordsHandler) Handle(query ListRecordsQuery) ([]domain.InventoryRecord, error) {
	return h.ledger.Snapshot(), nil
}
