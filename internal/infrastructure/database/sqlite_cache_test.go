package database

import (
	"testing"

	"luthierflow/internal/config"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestConnectOrderCache(t *testing.T) {
	db, err := ConnectOrderCache(config.Config{CacheDSN: "file::memory:"})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Ping())
	require.NoError(t, sqlDB.Close())
}

func TestCacheLogLevel(t *testing.T) {
	require.Equal(t, logger.Silent, cacheLogLevel(config.Config{}))
	require.Equal(t, logger.Info, cacheLogLevel(config.Config{CacheDebug: true}))
}
