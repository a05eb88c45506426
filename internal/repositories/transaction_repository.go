package repositories

import (
	"errors"
	"fmt"
	"time"

	"budget-tracker/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create persists a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch persists multiple transactions in a single database transaction.
// Either every row is inserted or none is.
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// GetByFilter retrieves transactions matching the conjunctive filter set.
// An empty result is a normal outcome, never an error.
func (r *transactionRepository) GetByFilter(filter models.TransactionFilter) ([]models.Transaction, error) {
	query := r.db.Model(&models.Transaction{})

	if filter.StartDate != nil {
		query = query.Where("occurred_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("occurred_at <= ?", *filter.EndDate)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if len(filter.Categories) > 0 {
		query = query.Where("category IN ?", filter.Categories)
	}
	if len(filter.Kinds) > 0 {
		query = query.Where("kind IN ?", filter.Kinds)
	}

	query = query.Order(orderClause(filter.SortBy))

	transactions := make([]models.Transaction, 0)
	if err := query.Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

// GetByMonth retrieves all transactions of one calendar month, most recent first
func (r *transactionRepository) GetByMonth(year int, month time.Month) ([]models.Transaction, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	transactions := make([]models.Transaction, 0)
	if err := r.db.Where("occurred_at >= ? AND occurred_at < ?", start, end).
		Order("occurred_at DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by month: %w", err)
	}
	return transactions, nil
}

// orderClause maps a sort identifier to its SQL order. The secondary id sort
// keeps same-instant rows in a deterministic order.
func orderClause(sortBy string) string {
	switch sortBy {
	case models.SortDateAsc:
		return "occurred_at ASC, id ASC"
	case models.SortAmountAsc:
		return "amount ASC, id ASC"
	case models.SortAmountDesc:
		return "amount DESC, id ASC"
	default:
		return "occurred_at DESC, id DESC"
	}
}
