package service

import (
	"context"

	"storefront/internal/models"
	"storefront/internal/repository"
)

// Shipping methods and their fixed costs.
const (
	ShippingReguler = "REGULER"
	ShippingExpress = "EXPRESS"

	shippingCostReguler = 15000
	shippingCostExpress = 30000
)

// Payment methods.
const (
	PaymentCOD      = "COD"
	PaymentTransfer = "TRANSFER"
)

type CartItem struct {
	ProductID int64
	Qty       int64
}

type BuyerInput struct {
	Name       string
	Phone      string
	Email      string
	Address    string
	City       string
	PostalCode string
}

type PlaceOrderInput struct {
	Customer       BuyerInput
	ShippingMethod string
	PaymentMethod  string
	Notes          string
	Items          []CartItem
}

type PlaceOrderResult struct {
	OrderID   int64  `json:"order_id"`
	OrderCode string `json:"order_code"`
	Total     int64  `json:"total"`
}

type OrderService interface {
	PlaceOrder(ctx context.Context, in PlaceOrderInput) (*PlaceOrderResult, error)
	GetOrderDetail(ctx context.Context, id int64) (*repository.OrderDetailRow, []models.OrderItem, error)
}

// shippingCost returns the fixed cost for a normalized shipping method,
// false for anything unknown.
func shippingCost(method string) (int64, bool) {
	switch method {
	case ShippingReguler:
		return shippingCostReguler, true
	case ShippingExpress:
		return shippingCostExpress, true
	default:
		return 0, false
	}
}
