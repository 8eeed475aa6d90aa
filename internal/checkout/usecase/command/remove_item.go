package command

import (
	"context"
	"fmt"

	"github.com/tair/drinkspot-pos/internal/checkout/builder"
)

// RemoveItemCommand represents the command to drop a line from the order
type RemoveItemCommand struct {
	ProductID uint
}

// RemoveItemHandler handles remove item command
type RemoveItemHandler struct {
	builder *builder.Builder
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(b *builder.Builder) *RemoveItemHandler {
	return &RemoveItemHandler{builder: b}
}

// Handle executes the remove item command
func (h *RemoveItemHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
	if cmd.ProductID == 0 {
		return fmt.Errorf("product_id is required")
	}

	return h.builder.RemoveItem(ctx, cmd.ProductID)
}
