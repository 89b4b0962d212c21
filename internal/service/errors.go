package service

import "errors"

var (
	ErrInvalidID = errors.New("Invalid id")

	// Checkout validation — all client-correctable, detected before any write.
	ErrMissingField      = errors.New("name, phone, address, city and postal_code are required")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrInvalidShipping   = errors.New("invalid shipping method")
	ErrInvalidPayment    = errors.New("invalid payment method")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidItem       = errors.New("invalid cart item")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")

	ErrOrderNotFound = errors.New("Order not found")

	// ErrOrderPersistence is the only error the write phase shows outward;
	// the underlying cause is logged server-side.
	ErrOrderPersistence = errors.New("failed to create order")
)
