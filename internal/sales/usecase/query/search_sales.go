package query

import (
	"fmt"
	"strings"
	"time"

	"github.com/tair/drinkspot-pos/internal/sales/domain"
)

// SearchSalesQuery represents the query to filter the sales history
type SearchSalesQuery struct {
	Term string
	From time.Time
	To   time.Time
}

// SearchSalesHandler handles search sales query
type SearchSalesHandler struct {
	repo domain.SaleRepository
}

// NewSearchSalesHandler creates a new search sales handler
func NewSearchSalesHandler(repo domain.SaleRepository) *SearchSalesHandler {
	return &SearchSalesHandler{repo: repo}
}

// Handle executes the search sales query. The term matches sale ids and item
// names case-insensitively; the date range is optional and the end date is
// extended to the end of its day. Results are newest first.
func (h *SearchSalesHandler) Handle(query SearchSalesQuery) ([]domain.Sale, error) {
	sales, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	term := strings.ToLower(query.Term)
	var to time.Time
	if !query.To.IsZero() {
		y, m, d := query.To.Date()
		to = time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), query.To.Location())
	}

	out := make([]domain.Sale, 0, len(sales))
	for i := len(sales) - 1; i >= 0; i-- {
		sale := sales[i]
		if term != "" && !matchesTerm(sale, term) {
			continue
		}
		if !query.From.IsZero() && sale.Timestamp.Before(query.From) {
			continue
		}
		if !to.IsZero() && sale.Timestamp.After(to) {
			continue
		}
		out = append(out, sale)
	}

	return out, nil
}

func matchesTerm(sale domain.Sale, term string) bool {
	if strings.Contains(strings.ToLower(sale.ID), term) {
		return true
	}
	for _, item := range sale.Items {
		if strings.Contains(strings.ToLower(item.Name), term) {
			return true
		}
	}
	return false
}
