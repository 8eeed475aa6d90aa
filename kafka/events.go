package kafka

import "time"

// SaleItem mirrors a finalized sale line on the wire.
type SaleItem struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// SaleCompletedEvent is published when a working order is finalized into a
// sale.
type SaleCompletedEvent struct {
	EventID         string     `json:"event_id"`
	EventType       string     `json:"event_type"`
	SaleID          string     `json:"sale_id"`
	Items           []SaleItem `json:"items"`
	Subtotal        float64    `json:"subtotal"`
	Tax             float64    `json:"tax"`
	DiscountPercent float64    `json:"discount_percent"`
	DiscountAmount  float64    `json:"discount_amount"`
	Total           float64    `json:"total"`
	Timestamp       time.Time  `json:"timestamp"`
}

// Event types
const (
	EventTypeSaleCompleted = "sale.completed"
)

// Kafka topics
const (
	TopicSaleCompleted = "sale-completed"
)
