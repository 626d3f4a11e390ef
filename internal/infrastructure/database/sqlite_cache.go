package database

import (
	"fmt"
	"log"

	"luthierflow/internal/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectOrderCache opens the SQLite database backing the local order
// snapshot. CacheDebug turns on SQL logging.
func ConnectOrderCache(cfg config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.CacheDSN), &gorm.Config{Logger: logger.Default.LogMode(cacheLogLevel(cfg))})
	if err != nil {
		return nil, fmt.Errorf("open order cache %q: %w", cfg.CacheDSN, err)
	}
	log.Printf("[database][cache] using %s", cfg.CacheDSN)
	return db, nil
}

func cacheLogLevel(cfg config.Config) logger.LogLevel {
	if cfg.CacheDebug {
		return logger.Info
	}
	return logger.Silent
}
