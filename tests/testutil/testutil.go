package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/brickworks/brickworks-api/models"
)

// NewTestDB opens an in-memory SQLite database with every model migrated.
// Each call returns a fresh, isolated database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Brick{},
		&models.Transport{},
		&models.Laborer{},
		&models.Order{},
		&models.Invoice{},
		&models.Expense{},
		&models.KilnCapacity{},
		&models.RoundCompletion{},
		&models.Setting{},
		&models.Sequence{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}
