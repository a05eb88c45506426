package repositories

import (
	"fmt"

	"budget-tracker/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// Upsert creates the budget row for (category, month) or overwrites its limit
func (r *budgetRepository) Upsert(budget *models.Budget) error {
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"limit_amount", "updated_at"}),
	}).Create(budget).Error; err != nil {
		return fmt.Errorf("failed to upsert budget: %w", err)
	}
	return nil
}

// GetByMonth retrieves all budgets defined for the given YYYY-MM month
func (r *budgetRepository) GetByMonth(month string) ([]models.Budget, error) {
	budgets := make([]models.Budget, 0)
	if err := r.db.Where("month = ?", month).
		Order("category ASC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}
	return budgets, nil
}
