package http

import (
	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/service"
)

// ErrorResponse is the single error wire shape: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newError(msg string) ErrorResponse { return ErrorResponse{Error: msg} }

type CheckoutCustomer struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

type CheckoutItem struct {
	ProductID int64 `json:"product_id"`
	Qty       int64 `json:"qty"`
}

// CheckoutRequest is the typed boundary for POST /api/orders; numeric and
// string fields are parsed here before anything reaches the validator.
type CheckoutRequest struct {
	Customer       CheckoutCustomer `json:"customer"`
	ShippingMethod string           `json:"shipping_method"`
	PaymentMethod  string           `json:"payment_method"`
	Notes          string           `json:"notes"`
	Items          []CheckoutItem   `json:"items"`
}

func (r *CheckoutRequest) toInput() service.PlaceOrderInput {
	items := make([]service.CartItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, service.CartItem{ProductID: it.ProductID, Qty: it.Qty})
	}
	return service.PlaceOrderInput{
		Customer: service.BuyerInput{
			Name:       r.Customer.Name,
			Phone:      r.Customer.Phone,
			Email:      r.Customer.Email,
			Address:    r.Customer.Address,
			City:       r.Customer.City,
			PostalCode: r.Customer.PostalCode,
		},
		ShippingMethod: r.ShippingMethod,
		PaymentMethod:  r.PaymentMethod,
		Notes:          r.Notes,
		Items:          items,
	}
}

type CheckoutResponse struct {
	OK        bool   `json:"ok"`
	OrderID   int64  `json:"order_id"`
	OrderCode string `json:"order_code"`
	Total     int64  `json:"total"`
}

type OrderDetailResponse struct {
	Order *repository.OrderDetailRow `json:"order"`
	Items []models.OrderItem         `json:"items"`
}
