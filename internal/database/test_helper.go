package database

import (
	"testing"
	"time"

	"budget-tracker/internal/config"
	"budget-tracker/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// A second pooled connection would see its own empty in-memory database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// CreateTestTransaction inserts a transaction row for tests
func CreateTestTransaction(t *testing.T, db *DB, occurredAt time.Time, description, category string, amount int64, kind string) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		OccurredAt:  occurredAt,
		Description: description,
		Category:    category,
		Amount:      amount,
		Kind:        kind,
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}

// CreateTestBudget inserts a budget row for tests
func CreateTestBudget(t *testing.T, db *DB, category string, limit int64, month string) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		Category: category,
		Limit:    limit,
		Month:    month,
	}

	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}

	return budget
}
