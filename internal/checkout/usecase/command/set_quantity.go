package command

import (
	"context"
	"fmt"

	"github.com/tair/drinkspot-pos/internal/checkout/builder"
)

// SetQuantityCommand represents the command to set a line's quantity
type SetQuantityCommand struct {
	ProductID uint
	Quantity  int
}

// SetQuantityHandler handles set quantity command
type SetQuantityHandler struct {
	builder *builder.Builder
}

// NewSetQuantityHandler creates a new set quantity handler
func NewSetQuantityHandler(b *builder.Builder) *SetQuantityHandler {
	return &SetQuantityHandler{builder: b}
}

// Handle executes the set quantity command. A quantity of zero or less
// removes the line.
func (h *SetQuantityHandler) Handle(ctx context.Context, cmd SetQuantityCommand) error {
	if cmd.ProductID == 0 {
		return fmt.Errorf("product_id is required")
	}

	return h.builder.SetQuantity(ctx, cmd.ProductID, cmd.Quantity)
}
