package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

const (
	TransactionKindIncome  = "income"
	TransactionKindExpense = "expense"
)

var (
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")
	ErrNegativeAmount         = errors.New("transaction amount must not be negative")
	ErrDescriptionRequired    = errors.New("transaction description is required")
	ErrCategoryRequired       = errors.New("transaction category is required")
	ErrDateRequired           = errors.New("transaction date is required")
)

// Transaction represents one recorded income or expense event.
// Transactions are append-only: they are never updated in place or deleted.
type Transaction struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	OccurredAt  time.Time `gorm:"not null;index" json:"occurred_at"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Category    string    `gorm:"type:varchar(50);not null;index" json:"category"`
	Amount      int64     `gorm:"not null" json:"amount"`
	Kind        string    `gorm:"type:varchar(10);not null;index" json:"kind"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()

	// Set timestamps if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.OccurredAt.IsZero() {
		return ErrDateRequired
	}

	if t.Description == "" {
		return ErrDescriptionRequired
	}

	if t.Category == "" {
		return ErrCategoryRequired
	}

	if t.Amount < 0 {
		return ErrNegativeAmount
	}

	if !IsValidTransactionKind(t.Kind) {
		return ErrInvalidTransactionKind
	}

	return nil
}

// IsValidTransactionKind checks if a kind string is valid
func IsValidTransactionKind(kind string) bool {
	return kind == TransactionKindIncome || kind == TransactionKindExpense
}

// IsIncome returns true for income transactions
func (t *Transaction) IsIncome() bool {
	return t.Kind == TransactionKindIncome
}

// IsExpense returns true for expense transactions
func (t *Transaction) IsExpense() bool {
	return t.Kind == TransactionKindExpense
}

// Day returns the transaction date truncated to midnight UTC, used as the
// grouping key for daily series.
func (t *Transaction) Day() time.Time {
	y, m, d := t.OccurredAt.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
