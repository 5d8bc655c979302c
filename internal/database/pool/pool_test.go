package pool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestDefaultPoolConfig(t *testing.T) {
	cfg := DefaultPoolConfig()

	assert.Equal(t, 25, cfg.MaxOpenConns)
	assert.Equal(t, 5, cfg.MaxIdleConns)
	assert.Equal(t, 5*time.Minute, cfg.ConnMaxLifetime)
	assert.Equal(t, 10*time.Minute, cfg.ConnMaxIdleTime)
}

func TestSetupConnectionPool(t *testing.T) {
	t.Run("applies settings", func(t *testing.T) {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		require.NoError(t, err)

		require.NoError(t, SetupConnectionPool(db, DefaultPoolConfig()))

		sqlDB, err := db.DB()
		require.NoError(t, err)
		assert.Equal(t, 25, sqlDB.Stats().MaxOpenConnections)
	})

	t.Run("nil database rejected", func(t *testing.T) {
		assert.Error(t, SetupConnectionPool(nil, DefaultPoolConfig()))
	})
}
