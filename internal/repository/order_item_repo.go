package repository

import (
	"context"
	"errors"

	"storefront/internal/models"

	"gorm.io/gorm"
)

type OrderItemRepo interface {
	BulkCreate(ctx context.Context, items []models.OrderItem) error
	GetByOrderID(ctx context.Context, orderID int64) ([]models.OrderItem, error)
	SumByOrder(ctx context.Context, orderID int64) (int64, error)
}

type orderItemRepo struct{ db *gorm.DB }

func NewOrderItemRepo(db *gorm.DB) OrderItemRepo { return &orderItemRepo{db: db} }

func (r *orderItemRepo) BulkCreate(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

// GetByOrderID returns line items in insertion order.
func (r *orderItemRepo) GetByOrderID(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	var rows []models.OrderItem
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id ASC").Find(&rows).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return rows, err
}

func (r *orderItemRepo) SumByOrder(ctx context.Context, orderID int64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.OrderItem{}).
		Select("COALESCE(SUM(line_total),0)").
		Where("order_id = ?", orderID).
		Scan(&total).Error
	return total, err
}
