package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNegativeLimit      = errors.New("budget limit must not be negative")
	ErrInvalidBudgetMonth = errors.New("budget month must use the YYYY-MM format")
)

// Budget is a category's monthly expense ceiling. At most one row exists per
// (category, month) pair; setting a budget for an existing pair overwrites the
// limit.
//
// The original schema enforced uniqueness on category alone, which made it
// impossible to budget the same category across two months. The constraint
// here is on (category, month), matching the conceptual model.
type Budget struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Category  string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_budgets_category_month" json:"category"`
	Limit     int64     `gorm:"column:limit_amount;not null" json:"limit"`
	Month     string    `gorm:"type:varchar(7);not null;uniqueIndex:idx_budgets_category_month;index" json:"month"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}
	return b.Validate()
}

// BeforeUpdate hook for Budget
func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now()
	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if b.Category == "" {
		return ErrCategoryRequired
	}

	if b.Limit < 0 {
		return ErrNegativeLimit
	}

	if !IsValidMonth(b.Month) {
		return ErrInvalidBudgetMonth
	}

	return nil
}

// IsValidMonth checks the YYYY-MM period format
func IsValidMonth(month string) bool {
	_, err := time.Parse("2006-01", month)
	return err == nil
}

// MonthKey formats a point in time as a YYYY-MM period identifier
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
