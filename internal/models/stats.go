package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyStats holds the aggregated figures for one calendar month together
// with the breakdowns the dashboard renders. Amounts are FCFA integers.
type MonthlyStats struct {
	Year         int             `json:"year"`
	Month        time.Month      `json:"month"`
	TotalIncome  int64           `json:"total_income"`
	TotalExpense int64           `json:"total_expense"`
	Balance      int64           `json:"balance"`
	SavingsRate  decimal.Decimal `json:"savings_rate"`

	// Transactions is the full filtered set for the month, most recent first.
	// Callers must treat it as a read-only snapshot.
	Transactions []Transaction `json:"transactions"`

	CategoryBreakdown []CategoryTotal       `json:"category_breakdown"`
	TopExpenses       []Transaction         `json:"top_expenses"`
	DailySeries       []SeriesPoint         `json:"daily_series"`
	DailyCategories   []CategorySeriesPoint `json:"daily_categories"`

	GeneratedAt time.Time `json:"generated_at"`
}

// CategoryTotal is one slice of a category distribution
type CategoryTotal struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
}

// SeriesPoint is a (date, kind) sum for trend charts
type SeriesPoint struct {
	Date  time.Time `json:"date"`
	Kind  string    `json:"kind"`
	Total int64     `json:"total"`
}

// CategorySeriesPoint is a (date, category) expense sum for stacked area charts
type CategorySeriesPoint struct {
	Date     time.Time `json:"date"`
	Category string    `json:"category"`
	Total    int64     `json:"total"`
}

// MonthSeriesPoint is a (month, kind) sum for bar charts
type MonthSeriesPoint struct {
	Month string `json:"month"`
	Kind  string `json:"kind"`
	Total int64  `json:"total"`
}

// MonthBalancePoint is the income minus expense of one month
type MonthBalancePoint struct {
	Month   string `json:"month"`
	Balance int64  `json:"balance"`
}

// WeekSeriesPoint is an (ISO year-week, kind) sum for weekly trend charts
type WeekSeriesPoint struct {
	YearWeek string `json:"year_week"`
	Kind     string `json:"kind"`
	Total    int64  `json:"total"`
}

// RangeAnalysis holds the derived statistics for an arbitrary filtered window
type RangeAnalysis struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	Total   int64 `json:"total"`
	Average int64 `json:"average"`
	Max     int64 `json:"max"`
	Count   int   `json:"count"`

	MonthlySeries   []MonthSeriesPoint  `json:"monthly_series"`
	MonthlyBalances []MonthBalancePoint `json:"monthly_balances"`
	WeeklySeries    []WeekSeriesPoint   `json:"weekly_series"`
	TopCategories   []CategoryTotal     `json:"top_categories"`

	GeneratedAt time.Time `json:"generated_at"`
}

// BudgetUsage is one row of the budget overview table: how much of a monthly
// ceiling has been consumed.
type BudgetUsage struct {
	Category    string          `json:"category"`
	Month       string          `json:"month"`
	Limit       int64           `json:"limit"`
	Spent       int64           `json:"spent"`
	Remaining   int64           `json:"remaining"`
	Utilization decimal.Decimal `json:"utilization"`
}
