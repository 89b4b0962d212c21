package repository

import (
	"context"

	"gorm.io/gorm"
)

type Repository struct {
	DB         *gorm.DB
	Products   ProductRepo
	Customers  CustomerRepo
	Orders     OrderRepo
	OrderItems OrderItemRepo
}

func buildRepository(db *gorm.DB) *Repository {
	return &Repository{
		DB:         db,
		Products:   NewProductRepo(db),
		Customers:  NewCustomerRepo(db),
		Orders:     NewOrderRepo(db),
		OrderItems: NewOrderItemRepo(db),
	}
}

func New(db *gorm.DB) *Repository { return buildRepository(db) }

// WithTx runs fn against a Repository bound to one transaction. The whole
// unit commits or rolls back together.
func (r *Repository) WithTx(ctx context.Context, fn func(tx *Repository) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(buildRepository(tx))
	})
}
