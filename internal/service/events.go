package service

import (
	"context"
	"time"
)

type OrderItemEvent struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Qty       int64  `json:"qty"`
	LineTotal int64  `json:"line_total"`
}

type OrderPlacedEvent struct {
	OrderID        int64            `json:"order_id"`
	OrderCode      string           `json:"order_code"`
	Subtotal       int64            `json:"subtotal"`
	ShippingMethod string           `json:"shipping_method"`
	ShippingCost   int64            `json:"shipping_cost"`
	PaymentMethod  string           `json:"payment_method"`
	Total          int64            `json:"total"`
	Items          []OrderItemEvent `json:"items"`
	CreatedAt      time.Time        `json:"created_at"`
}

// EventBus publishes storefront events. A nil bus disables publishing;
// checkout treats publish failures as log-only.
type EventBus interface {
	PublishOrderPlaced(ctx context.Context, e OrderPlacedEvent) error
}
