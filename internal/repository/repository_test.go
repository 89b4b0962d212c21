package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/testutil"
)

func seedProduct(t *testing.T, repo repository.ProductRepo, name string, price, stock int64, category string, createdAt time.Time) int64 {
	t.Helper()
	p := &models.Product{
		Name:      name,
		Price:     price,
		Stock:     stock,
		Category:  category,
		ImageURL:  "https://example.com/p.jpg",
		CreatedAt: createdAt,
	}
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("create product %q: %v", name, err)
	}
	return p.ID
}

func TestProductRepo_List_Filters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProductRepo(db)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	seedProduct(t, repo, "Jersey Home", 150000, 20, "Jersey", base)
	seedProduct(t, repo, "Jersey Away", 120000, 15, "Jersey", base.Add(time.Hour))
	seedProduct(t, repo, "Pin", 25000, 50, "Merchandise", base.Add(2*time.Hour))

	// case-insensitive substring over name or category
	list, err := repo.List(ctx, repository.ProductListFilter{Query: "jersey"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("query filter expected 2 got %d", len(list))
	}

	// substring match against category too
	list, err = repo.List(ctx, repository.ProductListFilter{Query: "MERCH"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Pin" {
		t.Fatalf("category substring expected [Pin] got %+v", list)
	}

	// exact category, ALL sentinel disables
	list, _ = repo.List(ctx, repository.ProductListFilter{Category: "Jersey"})
	if len(list) != 2 {
		t.Fatalf("category filter expected 2 got %d", len(list))
	}
	list, _ = repo.List(ctx, repository.ProductListFilter{Category: repository.CategoryAll})
	if len(list) != 3 {
		t.Fatalf("ALL expected 3 got %d", len(list))
	}

	// sorts
	list, _ = repo.List(ctx, repository.ProductListFilter{Sort: repository.SortPriceAsc})
	if list[0].Name != "Pin" {
		t.Fatalf("price_asc first expected Pin got %s", list[0].Name)
	}
	list, _ = repo.List(ctx, repository.ProductListFilter{Sort: repository.SortPriceDesc})
	if list[0].Name != "Jersey Home" {
		t.Fatalf("price_desc first expected Jersey Home got %s", list[0].Name)
	}
	list, _ = repo.List(ctx, repository.ProductListFilter{Sort: "newest"})
	if list[0].Name != "Pin" {
		t.Fatalf("newest first expected Pin got %s", list[0].Name)
	}
	// unknown sort falls back to newest
	list, _ = repo.List(ctx, repository.ProductListFilter{Sort: "banana"})
	if list[0].Name != "Pin" {
		t.Fatalf("fallback sort first expected Pin got %s", list[0].Name)
	}
}

func TestProductRepo_List_Cap(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProductRepo(db)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 205; i++ {
		seedProduct(t, repo, fmt.Sprintf("P%03d", i), 1000, 1, "Bulk", base.Add(time.Duration(i)*time.Second))
	}

	list, err := repo.List(ctx, repository.ProductListFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 200 {
		t.Fatalf("cap expected 200 got %d", len(list))
	}
}

func TestProductRepo_DecrementStock(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProductRepo(db)
	ctx := context.Background()

	id := seedProduct(t, repo, "Pin", 25000, 5, "Merchandise", time.Now())

	ok, err := repo.DecrementStock(ctx, id, 3)
	if err != nil || !ok {
		t.Fatalf("DecrementStock: ok=%v err=%v", ok, err)
	}
	p, _ := repo.GetByID(ctx, id)
	if p.Stock != 2 {
		t.Fatalf("stock expected 2 got %d", p.Stock)
	}

	// not enough left: no change, no error
	ok, err = repo.DecrementStock(ctx, id, 3)
	if err != nil {
		t.Fatalf("DecrementStock short: %v", err)
	}
	if ok {
		t.Fatalf("DecrementStock should have refused")
	}
	p, _ = repo.GetByID(ctx, id)
	if p.Stock != 2 {
		t.Fatalf("stock must be unchanged, got %d", p.Stock)
	}

	// unknown product
	ok, err = repo.DecrementStock(ctx, 9999, 1)
	if err != nil || ok {
		t.Fatalf("unknown product: ok=%v err=%v", ok, err)
	}
}

func TestOrderRepo_CreateAndDetail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.New(db)
	ctx := context.Background()

	email := "buyer@example.com"
	customer := &models.Customer{
		Name:       "Budi",
		Phone:      "0812000111",
		Email:      &email,
		Address:    "Jl. Mawar 1",
		City:       "Bandung",
		PostalCode: "40132",
	}
	if err := repo.Customers.Create(ctx, customer); err != nil {
		t.Fatalf("create customer: %v", err)
	}

	order := &models.Order{
		OrderCode:      "ORD-20240301-AB12CD",
		CustomerID:     customer.ID,
		ShippingMethod: "REGULER",
		ShippingCost:   15000,
		PaymentMethod:  "COD",
		Subtotal:       158000,
		Total:          173000,
		Status:         models.OrderStatusNew,
	}
	if err := repo.Orders.Create(ctx, order); err != nil {
		t.Fatalf("create order: %v", err)
	}

	items := []models.OrderItem{
		{OrderID: order.ID, ProductID: 1, NameSnapshot: "Jersey", PriceSnapshot: 79000, Qty: 2, LineTotal: 158000},
	}
	if err := repo.OrderItems.BulkCreate(ctx, items); err != nil {
		t.Fatalf("bulk create items: %v", err)
	}

	detail, err := repo.Orders.GetDetail(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetDetail: %v", err)
	}
	if detail == nil {
		t.Fatalf("GetDetail returned nil")
	}
	if detail.OrderCode != order.OrderCode || detail.CustomerName != "Budi" || detail.City != "Bandung" {
		t.Fatalf("detail mismatch: %+v", detail)
	}
	if detail.Email == nil || *detail.Email != email {
		t.Fatalf("email mismatch: %+v", detail.Email)
	}

	got, err := repo.OrderItems.GetByOrderID(ctx, order.ID)
	if err != nil || len(got) != 1 {
		t.Fatalf("GetByOrderID: %v %v", got, err)
	}
	if got[0].LineTotal != got[0].PriceSnapshot*got[0].Qty {
		t.Fatalf("line total invariant broken: %+v", got[0])
	}

	sum, err := repo.OrderItems.SumByOrder(ctx, order.ID)
	if err != nil || sum != 158000 {
		t.Fatalf("SumByOrder: sum=%d err=%v", sum, err)
	}

	missing, err := repo.Orders.GetDetail(ctx, 777)
	if err != nil || missing != nil {
		t.Fatalf("missing order: %+v %v", missing, err)
	}
}

func TestOrderRepo_OrderCodeUnique(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.New(db)
	ctx := context.Background()

	customer := &models.Customer{Name: "A", Phone: "1", Address: "x", City: "y", PostalCode: "z"}
	if err := repo.Customers.Create(ctx, customer); err != nil {
		t.Fatalf("create customer: %v", err)
	}

	mk := func() *models.Order {
		return &models.Order{
			OrderCode:      "ORD-20240301-FFFFFF",
			CustomerID:     customer.ID,
			ShippingMethod: "REGULER",
			ShippingCost:   15000,
			PaymentMethod:  "COD",
			Status:         models.OrderStatusNew,
		}
	}
	if err := repo.Orders.Create(ctx, mk()); err != nil {
		t.Fatalf("first create: %v", err)
	}

	err := repo.Orders.Create(ctx, mk())
	if err == nil {
		t.Fatalf("duplicate order_code must fail")
	}
	if !repository.IsUniqueViolation(err) {
		t.Fatalf("expected unique violation, got %v", err)
	}
}

func TestRepository_WithTx_RollsBack(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.New(db)
	ctx := context.Background()

	id := seedProduct(t, repo.Products, "Pin", 25000, 10, "Merchandise", time.Now())

	wantErr := fmt.Errorf("boom")
	err := repo.WithTx(ctx, func(tx *repository.Repository) error {
		if ok, err := tx.Products.DecrementStock(ctx, id, 4); err != nil || !ok {
			t.Fatalf("in-tx decrement: ok=%v err=%v", ok, err)
		}
		return wantErr
	})
	if err == nil {
		t.Fatalf("WithTx should propagate the error")
	}

	p, _ := repo.Products.GetByID(ctx, id)
	if p.Stock != 10 {
		t.Fatalf("rollback failed, stock=%d", p.Stock)
	}
}
