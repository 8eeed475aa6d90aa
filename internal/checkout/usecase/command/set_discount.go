package command

import (
	"context"

	"github.com/tair/drinkspot-pos/internal/checkout/builder"
)

// SetDiscountCommand represents the command to set the order discount
type SetDiscountCommand struct {
	Percent float64
}

// SetDiscountHandler handles set discount command
type SetDiscountHandler struct {
	builder *builder.Builder
}

// NewSetDiscountHandler creates a new set discount handler
func NewSetDiscountHandler(b *builder.Builder) *SetDiscountHandler {
	return &SetDiscountHandler{builder: b}
}

// Handle executes the set discount command; the percentage is clamped to
// [0, 100] by the builder.
func (h *SetDiscountHandler) Handle(ctx context.Context, cmd SetDiscountCommand) error {
	h.builder.SetDiscount(ctx, cmd.Percent)
	return nil
}
