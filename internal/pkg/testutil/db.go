package testutil

import (
	"testing"

	"neurostudy-be/internal/model"
	"neurostudy-be/pkg/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DB opens a fresh in-memory SQLite database with every table migrated.
// Each call gets its own database, so tests never see each other's rows.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := database.NewInMemorySQLite("test-" + uuid.NewString())
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		tb.Fatalf("failed to migrate test db: %v", err)
	}

	tb.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
