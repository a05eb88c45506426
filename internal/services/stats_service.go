package services

import (
	"fmt"
	"log/slog"
	"time"

	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories"

	"github.com/shopspring/decimal"
)

const topExpenseCount = 10
const topCategoryCount = 8

type statsService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewStatsService creates a new StatsServiceInterface instance
func NewStatsService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) StatsServiceInterface {
	return &statsService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

// ComputeMonthlyStats aggregates one calendar month of the ledger. A month
// with no transactions yields (nil, nil): "no data" is a valid outcome, not
// an error.
func (s *statsService) ComputeMonthlyStats(year int, month time.Month) (*models.MonthlyStats, error) {
	started := time.Now()

	transactions, err := s.transactionRepo.GetByMonth(year, month)
	if err != nil {
		slog.Error("failed to fetch transactions for monthly stats",
			"year", year,
			"month", int(month),
			"error", err)
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	if len(transactions) == 0 {
		return nil, nil
	}

	totalIncome, totalExpense := sumByKind(transactions)
	balance := totalIncome - totalExpense

	stats := &models.MonthlyStats{
		Year:              year,
		Month:             month,
		TotalIncome:       totalIncome,
		TotalExpense:      totalExpense,
		Balance:           balance,
		SavingsRate:       savingsRate(balance, totalIncome),
		Transactions:      transactions,
		CategoryBreakdown: expensesByCategory(transactions),
		TopExpenses:       topExpenses(transactions, topExpenseCount),
		DailySeries:       dailySeries(transactions),
		DailyCategories:   dailyCategoryExpenseSeries(transactions),
		GeneratedAt:       time.Now(),
	}

	if s.metrics != nil {
		s.metrics.ObserveStatsDuration(time.Since(started))
	}

	slog.Info("monthly stats computed",
		"year", year,
		"month", int(month),
		"transaction_count", len(transactions),
		"balance", balance)

	return stats, nil
}

// ComputeRangeAnalysis aggregates an arbitrary filtered window of the ledger.
// An empty window yields (nil, nil), mirroring ComputeMonthlyStats.
func (s *statsService) ComputeRangeAnalysis(filter models.TransactionFilter) (*models.RangeAnalysis, error) {
	started := time.Now()

	transactions, err := s.transactionRepo.GetByFilter(filter)
	if err != nil {
		slog.Error("failed to fetch transactions for range analysis", "error", err)
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	if len(transactions) == 0 {
		return nil, nil
	}

	var total, max int64
	for _, t := range transactions {
		total += t.Amount
		if t.Amount > max {
			max = t.Amount
		}
	}

	analysis := &models.RangeAnalysis{
		Total:           total,
		Average:         total / int64(len(transactions)),
		Max:             max,
		Count:           len(transactions),
		MonthlySeries:   monthlySeries(transactions),
		MonthlyBalances: monthlyBalances(transactions),
		WeeklySeries:    weeklySeries(transactions),
		TopCategories:   totalsByCategory(transactions, topCategoryCount),
		GeneratedAt:     time.Now(),
	}

	if filter.StartDate != nil {
		analysis.StartDate = *filter.StartDate
	}
	if filter.EndDate != nil {
		analysis.EndDate = *filter.EndDate
	}

	if s.metrics != nil {
		s.metrics.ObserveStatsDuration(time.Since(started))
	}

	slog.Info("range analysis computed",
		"transaction_count", len(transactions),
		"total", total)

	return analysis, nil
}

// savingsRate is balance over income as a percentage rounded to one decimal.
// Zero income yields a zero rate, never a division error.
func savingsRate(balance, totalIncome int64) decimal.Decimal {
	if totalIncome <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(balance).
		Div(decimal.NewFromInt(totalIncome)).
		Mul(decimal.NewFromInt(100)).
		Round(1)
}
