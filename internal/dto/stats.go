package dto

import (
	"budget-tracker/internal/models"
	"budget-tracker/internal/money"
)

// MonthlyStatsQuery selects the calendar month to aggregate
type MonthlyStatsQuery struct {
	Month string `query:"month" validate:"required,budget_month"`
}

// MonthlyStatsResponse is a month's aggregation with formatted headline figures
type MonthlyStatsResponse struct {
	models.MonthlyStats
	TotalIncomeFormatted  string `json:"total_income_formatted"`
	TotalExpenseFormatted string `json:"total_expense_formatted"`
	BalanceFormatted      string `json:"balance_formatted"`
}

// RangeAnalysisQuery selects the window and filters of a range analysis
type RangeAnalysisQuery struct {
	StartDate  string `query:"start_date"`
	EndDate    string `query:"end_date"`
	Category   string `query:"category"`
	Categories string `query:"categories"`
	Kinds      string `query:"kinds"`
}

// RangeAnalysisResponse is a window's aggregation with formatted headline figures
type RangeAnalysisResponse struct {
	models.RangeAnalysis
	TotalFormatted   string `json:"total_formatted"`
	AverageFormatted string `json:"average_formatted"`
	MaxFormatted     string `json:"max_formatted"`
}

// AlertQuery bounds the transaction window an alert evaluation looks at
type AlertQuery struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

// AlertsResponse represents the response of an alert evaluation
type AlertsResponse struct {
	Alerts []models.Alert `json:"alerts"`
	Count  int            `json:"count"`
}

// NewMonthlyStatsResponse formats monthly stats for API responses
func NewMonthlyStatsResponse(stats models.MonthlyStats) MonthlyStatsResponse {
	return MonthlyStatsResponse{
		MonthlyStats:          stats,
		TotalIncomeFormatted:  money.Format(stats.TotalIncome),
		TotalExpenseFormatted: money.Format(stats.TotalExpense),
		BalanceFormatted:      money.Format(stats.Balance),
	}
}

// NewRangeAnalysisResponse formats a range analysis for API responses
func NewRangeAnalysisResponse(analysis models.RangeAnalysis) RangeAnalysisResponse {
	return RangeAnalysisResponse{
		RangeAnalysis:    analysis,
		TotalFormatted:   money.Format(analysis.Total),
		AverageFormatted: money.Format(analysis.Average),
		MaxFormatted:     money.Format(analysis.Max),
	}
}
