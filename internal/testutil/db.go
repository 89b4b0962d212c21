package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"storefront/internal/database"
	"storefront/internal/migrate"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupTestDB opens a throwaway sqlite database under t.TempDir and runs the
// full migration against it. The same pragmas as production apply, so
// transaction and lock behavior in tests match the real store.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &database.Config{Path: filepath.Join(t.TempDir(), "store.db")}
	db, err := database.Connect(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("connect test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if err := migrate.Run(context.Background(), db, zap.NewNop(), migrate.DefaultOptions()); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
