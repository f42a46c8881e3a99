package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/statforge/habitquest/cache"
	"github.com/statforge/habitquest/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// SetupTestDB creates an in-memory SQLite DB and runs AutoMigrate.
// It requires no external services. Each call gets its own named
// shared-cache database so pooled connections see the same data while
// separate tests stay isolated.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:test%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "SetupTestDB: open")
	require.NoError(t, model.AutoMigrate(db), "SetupTestDB: AutoMigrate")
	return db
}

// SetupTestCache creates an in-process cache (no Redis required).
func SetupTestCache(t *testing.T) cache.Cache {
	t.Helper()
	c, err := cache.New(cache.Config{}) // empty RedisAddr → local cache
	require.NoError(t, err, "SetupTestCache: New")
	return c
}
