// Package testutil provides shared helpers for tests that need a database.
package testutil

import (
	"testing"

	"music_library/internal/db"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewTestDB opens a private in-memory SQLite database with the schema
// migrated and foreign keys enforced. It is closed when the test ends.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := db.SQLiteDSN("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	gdb, err := gorm.Open(sqlite.Open(dsn), db.GormConfig(false))
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))
	return gdb
}
