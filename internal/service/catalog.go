package service

import (
	"context"

	"storefront/internal/models"
	"storefront/internal/repository"
)

type ListProductsFilter struct {
	Query    string
	Category string
	Sort     string
}

type CatalogService interface {
	ListProducts(ctx context.Context, f ListProductsFilter) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
}

type catalogService struct {
	repo *repository.Repository
}

func NewCatalogService(repo *repository.Repository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) ListProducts(ctx context.Context, f ListProductsFilter) ([]models.Product, error) {
	list, err := s.repo.Products.List(ctx, repository.ProductListFilter{
		Query:    sanitizeText(f.Query, maxQueryLen),
		Category: sanitizeText(f.Category, maxCategoryLen),
		Sort:     sanitizeText(f.Sort, maxSortLen),
	})
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Product{}
	}
	return list, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	p, err := s.repo.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}
