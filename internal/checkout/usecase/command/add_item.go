package command

import (
	"context"
	"fmt"

	"github.com/tair/drinkspot-pos/internal/checkout/builder"
)

// AddItemCommand represents the command to add one unit of a product
type AddItemCommand struct {
	ProductID uint
}

// AddItemHandler handles add item command
type AddItemHandler struct {
	builder *builder.Builder
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(b *builder.Builder) *AddItemHandler {
	return &AddItemHandler{builder: b}
}

// Handle executes the add item command
func (h *AddItemHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
	if cmd.ProductID == 0 {
		return fmt.Errorf("product_id is required")
	}

	return h.builder.AddItem(ctx, cmd.ProductID)
}
