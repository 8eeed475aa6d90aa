package query

import (
	"fmt"

	salesdomain "github.com/tair/drinkspot-pos/internal/sales/domain"
)

// DefaultRecentLimit is the dashboard's recent-sales view size.
const DefaultRecentLimit = 10

// RecentSalesQuery represents the query for the most recent sales
type RecentSalesQuery struct {
	Limit int
}

// RecentSalesHandler handles recent sales query
type RecentSalesHandler struct {
	repo salesdomain.SaleRepository
}

// NewRecentSalesHandler creates a new recent sales handler
func NewRecentSalesHandler(repo salesdomain.SaleRepository) *RecentSalesHandler {
	return &RecentSalesHandler{repo: repo}
}

// Handle executes the recent sales query, returning the most recently
// appended sales first.
func (h *RecentSalesHandler) Handle(query RecentSalesQuery) ([]salesdomain.Sale, error) {
	sales, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	limit := query.Limit
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > len(sales) {
		limit = len(sales)
	}

	out := make([]salesdomain.Sale, 0, limit)
	for i := len(sales) - 1; i >= len(sales)-limit; i-- {
		out = append(out, sales[i])
	}

	return out, nil
}
