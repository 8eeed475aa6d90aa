package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tair/drinkspot-pos/internal/checkout/builder"
	salesdomain "github.com/tair/drinkspot-pos/internal/sales/domain"
	settingsdomain "github.com/tair/drinkspot-pos/internal/settings/domain"
	"github.com/tair/drinkspot-pos/kafka"
	"github.com/tair/drinkspot-pos/pkg/logger"
)

// FinalizeSaleCommand represents the command to convert the working order
// into a permanent sale
type FinalizeSaleCommand struct{}

// FinalizeSaleHandler handles finalize sale command
type FinalizeSaleHandler struct {
	builder   *builder.Builder
	sales     salesdomain.SaleRepository
	settings  settingsdomain.Provider
	publisher *kafka.Publisher
}

// NewFinalizeSaleHandler creates a new finalize sale handler
func NewFinalizeSaleHandler(
	b *builder.Builder,
	sales salesdomain.SaleRepository,
	settings settingsdomain.Provider,
	publisher *kafka.Publisher,
) *FinalizeSaleHandler {
	return &FinalizeSaleHandler{
		builder:   b,
		sales:     sales,
		settings:  settings,
		publisher: publisher,
	}
}

// Handle executes the finalize sale command. The ledger is not touched:
// stock was already decremented when lines were added, and finalization
// makes those reservations permanent. Snapshot, pricing and reset happen
// atomically inside the builder, so concurrent cart mutations land either
// in this sale or in the next order, never in between.
func (h *FinalizeSaleHandler) Handle(ctx context.Context, cmd FinalizeSaleCommand) (*salesdomain.Sale, error) {
	order, totals, err := h.builder.Finalize(ctx, h.settings.Get().TaxRatePercent)
	if err != nil {
		return nil, err
	}

	items := make([]salesdomain.SaleItem, len(order.Lines))
	for i, line := range order.Lines {
		items[i] = salesdomain.SaleItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
		}
	}

	sale := &salesdomain.Sale{
		ID:              uuid.New().String(),
		Timestamp:       time.Now(),
		Items:           items,
		Subtotal:        totals.Subtotal,
		Tax:             totals.Tax,
		DiscountPercent: totals.DiscountPercent,
		DiscountAmount:  totals.DiscountAmount,
		Total:           totals.Total,
	}

	if err := h.sales.Append(sale); err != nil {
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	h.publishEvent(ctx, sale)

	logger.Info(ctx).
		Str("sale_id", sale.ID).
		Int("items", sale.ItemCount()).
		Float64("total", sale.Total).
		Msg("Sale finalized")

	return sale, nil
}

// publishEvent emits the sale over Kafka, best-effort: the sale is already
// in the log, so a broker failure only loses the notification.
func (h *FinalizeSaleHandler) publishEvent(ctx context.Context, sale *salesdomain.Sale) {
	items := make([]kafka.SaleItem, len(sale.Items))
	for i, item := range sale.Items {
		items[i] = kafka.SaleItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}

	event := kafka.SaleCompletedEvent{
		SaleID:          sale.ID,
		Items:           items,
		Subtotal:        sale.Subtotal,
		Tax:             sale.Tax,
		DiscountPercent: sale.DiscountPercent,
		DiscountAmount:  sale.DiscountAmount,
		Total:           sale.Total,
		Timestamp:       sale.Timestamp,
	}

	if err := h.publisher.PublishSaleCompleted(ctx, event); err != nil {
		logger.Warn(ctx).Err(err).Str("sale_id", sale.ID).Msg("Sale event not published")
	}
}
