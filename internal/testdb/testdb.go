// Package testdb provides an in-memory SQLite database for repository tests.
package testdb

import (
	"testing"

	"gorm.io/gorm"
	"splyt/internal/config"
	"splyt/internal/infra"
)

// New opens a migrated in-memory SQLite database that is closed when the test finishes.
func New(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infra.OpenDatabase(config.Config{
		StoreDriver: config.StoreDriverSQLite,
		SQLitePath:  ":memory:",
	})
	if err != nil {
		t.Fatalf("testdb.New: %v", err)
	}
	t.Cleanup(func() { infra.CloseDatabase(db) })
	return db
}
