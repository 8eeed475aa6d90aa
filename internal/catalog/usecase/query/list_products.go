package query

import (
	"fmt"
	"strings"

	"github.com/tair/drinkspot-pos/internal/catalog/domain"
)

// ListProductsQuery represents the query to list catalog products
type ListProductsQuery struct {
	Search   string
	Category string
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.CatalogRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.CatalogRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query. An empty category or the literal
// "All" matches every product; the search term matches name substrings
// case-insensitively.
func (h *ListProductsHandler) Handle(query ListProductsQuery) ([]domain.Product, error) {
	products, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	search := strings.ToLower(query.Search)
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if query.Category != "" && query.Category != "All" && p.Category != query.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}
