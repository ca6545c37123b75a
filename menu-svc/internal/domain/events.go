package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

// OrderEvent is the payload written to the orders topic.
type OrderEvent struct {
	Type      string          `json:"type"`
	OrderID   int             `json:"order_id"`
	Status    OrderStatus     `json:"status"`
	Total     decimal.Decimal `json:"total"`
	Items     []OrderItem     `json:"items,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}
