package repositories

import (
	"time"

	"budget-tracker/internal/models"
)

// TransactionRepositoryInterface defines transaction persistence operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByID(id uint) (*models.Transaction, error)
	GetByFilter(filter models.TransactionFilter) ([]models.Transaction, error)
	GetByMonth(year int, month time.Month) ([]models.Transaction, error)
}

// BudgetRepositoryInterface defines budget persistence operations
type BudgetRepositoryInterface interface {
	Upsert(budget *models.Budget) error
	GetByMonth(month string) ([]models.Budget, error)
}
