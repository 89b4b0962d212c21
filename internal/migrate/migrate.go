package migrate

import (
	"context"

	"storefront/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Options struct {
	EnableForeignKeys bool // PRAGMA foreign_keys (sqlite ships with it off)
	CreateIndexes     bool // индексы и UNIQUE поверх GORM-тегов
}

func DefaultOptions() Options {
	return Options{
		EnableForeignKeys: true,
		CreateIndexes:     true,
	}
}

// Run creates the storefront schema. CHECK constraints ride along in the
// CREATE TABLE via gorm tags; sqlite cannot add them afterwards.
func Run(ctx context.Context, db *gorm.DB, log *zap.Logger, opt Options) error {
	log.Info("migrating storefront schema")

	if opt.EnableForeignKeys {
		if err := db.WithContext(ctx).Exec(`PRAGMA foreign_keys = ON`).Error; err != nil {
			log.Error("enable foreign keys", zap.Error(err))
			return err
		}
	}

	if err := db.WithContext(ctx).AutoMigrate(
		&models.Product{},
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Error("auto migrate", zap.Error(err))
		return err
	}

	if opt.CreateIndexes {
		// Страховка на случай если уникальный индекс не создался тегом.
		stmts := []string{
			`CREATE UNIQUE INDEX IF NOT EXISTS ux_orders_order_code ON orders (order_code)`,
			`CREATE INDEX IF NOT EXISTS ix_products_category_created ON products (category, created_at DESC)`,
			`CREATE INDEX IF NOT EXISTS ix_orders_created ON orders (created_at DESC)`,
			`CREATE INDEX IF NOT EXISTS ix_order_items_order ON order_items (order_id)`,
		}
		for _, s := range stmts {
			if err := db.WithContext(ctx).Exec(s).Error; err != nil {
				log.Error("create index", zap.String("stmt", s), zap.Error(err))
				return err
			}
		}
	}

	log.Info("storefront schema ready")
	return nil
}
