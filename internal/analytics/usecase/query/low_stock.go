package query

import (
	"fmt"
	"sort"

	catalogdomain "github.com/tair/drinkspot-pos/internal/catalog/domain"
	invdomain "github.com/tair/drinkspot-pos/internal/inventory/domain"
)

// LowStockQuery represents the query to list products at or below threshold
type LowStockQuery struct{}

// LowStockItem is an inventory record joined to its product name.
type LowStockItem struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
	Threshold int    `json:"threshold"`
}

// LowStockHandler handles low stock query
type LowStockHandler struct {
	ledger  invdomain.Ledger
	catalog catalogdomain.CatalogRepository
}

// NewLowStockHandler creates a new low stock handler
func NewLowStockHandler(ledger invdomain.Ledger, catalog catalogdomain.CatalogRepository) *LowStockHandler {
	return &LowStockHandler{ledger: ledger, catalog: catalog}
}

// Handle executes the low stock query. A record with stock equal to its
// threshold is included; results are sorted ascending by stock.
func (h *LowStockHandler) Handle(query LowStockQuery) ([]LowStockItem, error) {
	products, err := h.catalog.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	names := make(map[uint]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	var out []LowStockItem
	for _, rec := range h.ledger.Snapshot() {
		if !rec.IsLowStock() {
			continue
		}

		name, ok := names[rec.ProductID]
		if !ok {
			name = "Unknown Product"
		}

		out = append(out, LowStockItem{
			ProductID: rec.ProductID,
			Name:      name,
			Stock:     rec.Stock,
			Threshold: rec.Threshold,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Stock < out[j].Stock
	})

	return out, nil
}
