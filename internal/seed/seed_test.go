package seed_test

import (
	"context"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/seed"
	"storefront/internal/testutil"

	"go.uber.org/zap"
)

func TestProducts_SeedsEmptyCatalog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.New(db)
	ctx := context.Background()

	if err := seed.Products(ctx, repos, zap.NewNop()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cnt, err := repos.Products.CountAll(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if cnt != 4 {
		t.Fatalf("expected 4 seeded products got %d", cnt)
	}

	list, err := repos.Products.List(ctx, repository.ProductListFilter{Category: "Jersey Kobarkan"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 jerseys got %d", len(list))
	}
	for _, p := range list {
		if p.Price != 150000 {
			t.Fatalf("jersey price mismatch: %+v", p)
		}
	}
}

func TestProducts_SkipsNonEmptyCatalog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.New(db)
	ctx := context.Background()

	existing := &models.Product{Name: "Sticker", Price: 5000, Stock: 99, Category: "Merchandise HME", ImageURL: "https://example.com/s.jpg"}
	if err := repos.Products.Create(ctx, existing); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := seed.Products(ctx, repos, zap.NewNop()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cnt, err := repos.Products.CountAll(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if cnt != 1 {
		t.Fatalf("non-empty catalog was reseeded: %d rows", cnt)
	}
}

func TestProducts_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.New(db)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := seed.Products(ctx, repos, zap.NewNop()); err != nil {
			t.Fatalf("seed run %d: %v", i+1, err)
		}
	}

	cnt, err := repos.Products.CountAll(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if cnt != 4 {
		t.Fatalf("expected 4 products after two runs got %d", cnt)
	}
}
