package command

import (
	"context"

	"github.com/tair/drinkspot-pos/internal/checkout/builder"
)

// ClearOrderCommand represents the command to cancel the working order
type ClearOrderCommand struct{}

// ClearOrderHandler handles clear order command
type ClearOrderHandler struct {
	builder *builder.Builder
}

// NewClearOrderHandler creates a new clear order handler
func NewClearOrderHandler(b *builder.Builder) *ClearOrderHandler {
	return &ClearOrderHandler{builder: b}
}

// Handle executes the clear order command, restoring pre-order stock levels.
func (h *ClearOrderHandler) Handle(ctx context.Context, cmd ClearOrderCommand) error {
	return h.builder.Clear(ctx)
}
