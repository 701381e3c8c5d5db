// Package testutil holds the database and HTTP helpers shared by package tests
// and the cmd/testcontainers runner.
package testutil

import (
	"testing"

	"github.com/localnerve/amenitydb/internal/config"
	"github.com/localnerve/amenitydb/internal/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// SQLiteConfig describes a private in-memory pure-Go SQLite database.
// The pool is a single connection because every connection to :memory: opens
// its own empty database.
func SQLiteConfig() *config.Config {
	return &config.Config{
		Port:              "3000",
		Env:               "test",
		CORSOrigins:       "*",
		LogLevel:          "warn",
		LogFormat:         "json",
		DBType:            "sqlite-pure",
		DBDatabase:        ":memory:",
		DBConnectionLimit: 1,
	}
}

// NewTestDB opens a migrated in-memory database that is closed when the test ends
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Connect(SQLiteConfig())
	require.NoError(t, err, "connect test database")
	t.Cleanup(func() {
		_ = database.Close(db)
	})

	require.NoError(t, database.AutoMigrate(db), "migrate test database")
	return db
}
