package services

import (
	"fmt"
	"log/slog"
	"time"

	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories"
)

type ledgerService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewLedgerService creates a new LedgerServiceInterface instance
func NewLedgerService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) LedgerServiceInterface {
	return &ledgerService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

// AddTransaction validates and persists one ledger entry and returns its
// store-assigned id. Validation failures leave the store untouched.
func (s *ledgerService) AddTransaction(occurredAt time.Time, description, category string, amount int64, kind, notes string) (uint, error) {
	transaction := &models.Transaction{
		OccurredAt:  occurredAt,
		Description: description,
		Category:    category,
		Amount:      amount,
		Kind:        kind,
		Notes:       notes,
	}

	if err := transaction.Validate(); err != nil {
		slog.Warn("transaction rejected",
			"category", category,
			"kind", kind,
			"error", err)
		return 0, err
	}

	if !models.IsKnownCategory(category) {
		slog.Info("transaction uses a category outside the known set",
			"category", category)
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		slog.Error("failed to persist transaction",
			"category", category,
			"error", err)
		return 0, fmt.Errorf("failed to add transaction: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordTransaction(kind)
	}

	slog.Info("transaction recorded",
		"id", transaction.ID,
		"category", category,
		"kind", kind,
		"amount", amount)

	return transaction.ID, nil
}

// QueryTransactions retrieves a read-only snapshot matching the filter,
// most recent first unless the filter says otherwise.
func (s *ledgerService) QueryTransactions(filter models.TransactionFilter) ([]models.Transaction, error) {
	if !models.IsValidSort(filter.SortBy) {
		return nil, fmt.Errorf("unknown sort order: %s", filter.SortBy)
	}

	transactions, err := s.transactionRepo.GetByFilter(filter)
	if err != nil {
		slog.Error("failed to query transactions", "error", err)
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}

	return transactions, nil
}
