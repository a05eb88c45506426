package dto

import (
	"budget-tracker/internal/models"
	"budget-tracker/internal/money"
)

// SetBudgetRequest creates or overwrites a category's monthly ceiling
type SetBudgetRequest struct {
	Category string `json:"category" validate:"required,max=50"`
	Limit    int64  `json:"limit" validate:"fcfa_amount"`
	Month    string `json:"month" validate:"required,budget_month"`
}

// BudgetView is a budget enriched with its formatted limit
type BudgetView struct {
	models.Budget
	LimitFormatted string `json:"limit_formatted"`
}

// ListBudgetsResponse represents the response for listing a month's budgets
type ListBudgetsResponse struct {
	Month   string       `json:"month"`
	Budgets []BudgetView `json:"budgets"`
}

// BudgetUsageView reports consumption against one ceiling with formatted amounts
type BudgetUsageView struct {
	models.BudgetUsage
	LimitFormatted     string `json:"limit_formatted"`
	SpentFormatted     string `json:"spent_formatted"`
	RemainingFormatted string `json:"remaining_formatted"`
}

// BudgetOverviewResponse represents the response for the budget overview
type BudgetOverviewResponse struct {
	Month   string            `json:"month"`
	Budgets []BudgetUsageView `json:"budgets"`
}

// NewListBudgetsResponse formats a budget slice for API responses
func NewListBudgetsResponse(month string, budgets []models.Budget) ListBudgetsResponse {
	views := make([]BudgetView, 0, len(budgets))
	for _, b := range budgets {
		views = append(views, BudgetView{
			Budget:         b,
			LimitFormatted: money.Format(b.Limit),
		})
	}
	return ListBudgetsResponse{Month: month, Budgets: views}
}

// NewBudgetOverviewResponse formats budget usages for API responses
func NewBudgetOverviewResponse(month string, usages []models.BudgetUsage) BudgetOverviewResponse {
	views := make([]BudgetUsageView, 0, len(usages))
	for _, u := range usages {
		views = append(views, BudgetUsageView{
			BudgetUsage:        u,
			LimitFormatted:     money.Format(u.Limit),
			SpentFormatted:     money.Format(u.Spent),
			RemainingFormatted: money.Format(u.Remaining),
		})
	}
	return BudgetOverviewResponse{Month: month, Budgets: views}
}
