package repository

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/models"

	"gorm.io/gorm"
)

// Listing size cap; the catalog endpoint never pages.
const maxProductRows = 200

const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "ALL"

type ProductListFilter struct {
	Query    string // подстрока по name/category
	Category string
	Sort     string
}

type ProductRepo interface {
	Create(ctx context.Context, p *models.Product) error
	List(ctx context.Context, f ProductListFilter) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
	CountAll(ctx context.Context) (int64, error)

	// DecrementStock subtracts qty only while stock stays non-negative;
	// a false return means the product row was missing or short on stock.
	DecrementStock(ctx context.Context, id, qty int64) (bool, error)
}

type productRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) ProductRepo { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) List(ctx context.Context, f ProductListFilter) ([]models.Product, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{})

	if s := strings.TrimSpace(f.Query); s != "" {
		pat := "%" + s + "%"
		q = q.Where("lower(name) LIKE lower(?) OR lower(category) LIKE lower(?)", pat, pat)
	}

	if f.Category != "" && f.Category != CategoryAll {
		q = q.Where("category = ?", f.Category)
	}

	switch f.Sort {
	case SortPriceAsc:
		q = q.Order("price ASC")
	case SortPriceDesc:
		q = q.Order("price DESC")
	default: // newest, а также любое непонятное значение
		q = q.Order("created_at DESC")
	}

	var list []models.Product
	err := q.Limit(maxProductRows).Find(&list).Error
	return list, err
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *productRepo) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(fields).Error
}

func (r *productRepo) CountAll(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&cnt).Error
	return cnt, err
}

func (r *productRepo) DecrementStock(ctx context.Context, id, qty int64) (bool, error) {
	// атомарно: stock -= qty, если хватает
	tx := r.db.WithContext(ctx).Exec(`
UPDATE products
SET stock = stock - @q
WHERE id = @pid
  AND stock >= @q
`, map[string]any{
		"pid": id,
		"q":   qty,
	})
	return tx.RowsAffected > 0, tx.Error
}
