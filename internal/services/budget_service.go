package services

import (
	"fmt"
	"log/slog"
	"time"

	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories"

	"github.com/shopspring/decimal"
)

type budgetService struct {
	budgetRepo      repositories.BudgetRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
}

// NewBudgetService creates a new BudgetServiceInterface instance
func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
) BudgetServiceInterface {
	return &budgetService{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// SetBudget creates or overwrites the monthly ceiling of a category.
// Validation failures leave the store untouched.
func (s *budgetService) SetBudget(category string, limit int64, month string) error {
	budget := &models.Budget{
		Category: category,
		Limit:    limit,
		Month:    month,
	}

	if err := budget.Validate(); err != nil {
		slog.Warn("budget rejected",
			"category", category,
			"month", month,
			"error", err)
		return err
	}

	if err := s.budgetRepo.Upsert(budget); err != nil {
		slog.Error("failed to persist budget",
			"category", category,
			"month", month,
			"error", err)
		return fmt.Errorf("failed to set budget: %w", err)
	}

	slog.Info("budget set",
		"category", category,
		"month", month,
		"limit", limit)

	return nil
}

// QueryBudgets retrieves all budgets of a month; none defined is an empty
// slice, not an error.
func (s *budgetService) QueryBudgets(month string) ([]models.Budget, error) {
	if !models.IsValidMonth(month) {
		return nil, models.ErrInvalidBudgetMonth
	}

	budgets, err := s.budgetRepo.GetByMonth(month)
	if err != nil {
		slog.Error("failed to query budgets", "month", month, "error", err)
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}

	return budgets, nil
}

// Overview reports, per budget of the month, how much of the ceiling the
// month's expenses have consumed.
func (s *budgetService) Overview(month string) ([]models.BudgetUsage, error) {
	if !models.IsValidMonth(month) {
		return nil, models.ErrInvalidBudgetMonth
	}

	budgets, err := s.budgetRepo.GetByMonth(month)
	if err != nil {
		slog.Error("failed to fetch budgets for overview", "month", month, "error", err)
		return nil, fmt.Errorf("failed to fetch budgets: %w", err)
	}

	if len(budgets) == 0 {
		return []models.BudgetUsage{}, nil
	}

	start, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, models.ErrInvalidBudgetMonth
	}

	transactions, err := s.transactionRepo.GetByMonth(start.Year(), start.Month())
	if err != nil {
		slog.Error("failed to fetch transactions for overview", "month", month, "error", err)
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	usages := make([]models.BudgetUsage, 0, len(budgets))
	for _, budget := range budgets {
		var spent int64
		for _, t := range transactions {
			if t.IsExpense() && t.Category == budget.Category {
				spent += t.Amount
			}
		}

		usages = append(usages, models.BudgetUsage{
			Category:    budget.Category,
			Month:       budget.Month,
			Limit:       budget.Limit,
			Spent:       spent,
			Remaining:   budget.Limit - spent,
			Utilization: utilization(spent, budget.Limit),
		})
	}

	return usages, nil
}

// utilization is spent over limit as a percentage rounded to one decimal,
// zero when no limit is set
func utilization(spent, limit int64) decimal.Decimal {
	if limit <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(spent).
		Div(decimal.NewFromInt(limit)).
		Mul(decimal.NewFromInt(100)).
		Round(1)
}
