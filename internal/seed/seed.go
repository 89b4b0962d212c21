package seed

import (
	"context"

	"storefront/internal/models"
	"storefront/internal/repository"

	"go.uber.org/zap"
)

// Initial catalog, inserted only into an empty products table. Prices are in
// the smallest currency unit (IDR has no subunit).
var defaultProducts = []models.Product{
	{
		Name:        "Jersey Kobarkan - Home",
		Price:       150000,
		Stock:       20,
		Category:    "Jersey Kobarkan",
		ImageURL:    "https://picsum.photos/seed/jersey1/900/600",
		Description: "Jersey Kobarkan edisi home.",
	},
	{
		Name:        "Jersey Kobarkan - Away",
		Price:       150000,
		Stock:       15,
		Category:    "Jersey Kobarkan",
		ImageURL:    "https://picsum.photos/seed/jersey2/900/600",
		Description: "Jersey Kobarkan edisi away.",
	},
	{
		Name:        "Merch HME - Pin",
		Price:       25000,
		Stock:       50,
		Category:    "Merchandise HME",
		ImageURL:    "https://picsum.photos/seed/merch1/900/600",
		Description: "Pin merchandise HME.",
	},
	{
		Name:        "Merch HME - Keychain",
		Price:       25000,
		Stock:       40,
		Category:    "Merchandise HME",
		ImageURL:    "https://picsum.photos/seed/merch2/900/600",
		Description: "Gantungan kunci merchandise HME.",
	},
}

// Products fills an empty catalog inside one transaction. A non-empty table
// is left untouched so restarts never duplicate the seed.
func Products(ctx context.Context, repo *repository.Repository, log *zap.Logger) error {
	cnt, err := repo.Products.CountAll(ctx)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	err = repo.WithTx(ctx, func(tx *repository.Repository) error {
		for i := range defaultProducts {
			p := defaultProducts[i]
			if err := tx.Products.Create(ctx, &p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("seeded product catalog", zap.Int("products", len(defaultProducts)))
	return nil
}
