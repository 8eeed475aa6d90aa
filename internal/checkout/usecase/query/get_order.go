package query

import (
	"github.com/tair/drinkspot-pos/internal/checkout/builder"
	"github.com/tair/drinkspot-pos/internal/checkout/domain"
	"github.com/tair/drinkspot-pos/internal/pricing"
	settingsdomain "github.com/tair/drinkspot-pos/internal/settings/domain"
)

// GetOrderQuery represents the query to read the working order
type GetOrderQuery struct{}

// OrderView is the working order together with its computed totals.
type OrderView struct {
	Order  domain.WorkingOrder `json:"order"`
	Totals pricing.Totals      `json:"totals"`
}

// GetOrderHandler handles get order query
type GetOrderHandler struct {
	builder  *builder.Builder
	settings settingsdomain.Provider
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(b *builder.Builder, settings settingsdomain.Provider) *GetOrderHandler {
	return &GetOrderHandler{builder: b, settings: settings}
}

// Handle executes the get order query
func (h *GetOrderHandler) Handle(query GetOrderQuery) (*OrderView, error) {
	return &OrderView{
		Order:  h.builder.Order(),
		Totals: h.builder.Totals(h.settings.Get().TaxRatePercent),
	}, nil
}
