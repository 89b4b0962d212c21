package repository

import (
	"context"
	"errors"
	"time"

	"storefront/internal/models"

	"gorm.io/gorm"
)

// OrderDetailRow is the admin lookup shape: the order joined with its
// customer's contact fields, one flat row.
type OrderDetailRow struct {
	ID             int64              `json:"id"`
	OrderCode      string             `json:"order_code"`
	CustomerID     int64              `json:"customer_id"`
	ShippingMethod string             `json:"shipping_method"`
	ShippingCost   int64              `json:"shipping_cost"`
	PaymentMethod  string             `json:"payment_method"`
	Notes          *string            `json:"notes"`
	Subtotal       int64              `json:"subtotal"`
	Total          int64              `json:"total"`
	Status         models.OrderStatus `json:"status"`
	CreatedAt      time.Time          `json:"created_at"`
	CustomerName   string             `json:"customer_name"`
	Phone          string             `json:"phone"`
	Email          *string            `json:"email"`
	Address        string             `json:"address"`
	City           string             `json:"city"`
	PostalCode     string             `json:"postal_code"`
}

type OrderRepo interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	GetByCode(ctx context.Context, code string) (*models.Order, error)
	GetDetail(ctx context.Context, id int64) (*OrderDetailRow, error)
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) OrderRepo { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, o *models.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	var ord models.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&ord, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ord, err
}

func (r *orderRepo) GetByCode(ctx context.Context, code string) (*models.Order, error) {
	var ord models.Order
	err := r.db.WithContext(ctx).First(&ord, "order_code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ord, err
}

func (r *orderRepo) GetDetail(ctx context.Context, id int64) (*OrderDetailRow, error) {
	var row OrderDetailRow
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Select(`orders.*,
customers.name AS customer_name,
customers.phone,
customers.email,
customers.address,
customers.city,
customers.postal_code`).
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Where("orders.id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
