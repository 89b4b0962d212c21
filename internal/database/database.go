package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Config struct {
	// Path is the sqlite database file. ":memory:" style paths are accepted
	// as-is for tests.
	Path string
	// BusyTimeoutMS bounds how long a writer waits for the file lock before
	// the driver gives up with SQLITE_BUSY.
	BusyTimeoutMS int
}

// DSN renders the mattn/go-sqlite3 connection string. Transactions start in
// immediate mode so the checkout write unit takes the write lock at BEGIN and
// concurrent submissions serialize instead of deadlocking on lock upgrade.
func (c *Config) DSN() string {
	timeout := c.BusyTimeoutMS
	if timeout <= 0 {
		timeout = 5000
	}
	return fmt.Sprintf("file:%s?_fk=1&_journal=WAL&_busy_timeout=%d&_txlock=immediate", c.Path, timeout)
}

func Connect(cfg *Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", cfg.Path, err)
	}
	log.Info("database connected", zap.String("path", cfg.Path))
	return db, nil
}

func Close(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("get sql.DB for close", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Error("close database", zap.Error(err))
		return
	}
	log.Info("database closed")
}
