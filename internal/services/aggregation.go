package services

import (
	"fmt"
	"sort"
	"time"

	"budget-tracker/internal/models"
)

// Grouping helpers shared by the stats and alert services. All of them are
// pure functions over transaction snapshots and never mutate their input.

// sumByKind returns the income and expense totals of a transaction set
func sumByKind(transactions []models.Transaction) (income, expense int64) {
	for _, t := range transactions {
		switch t.Kind {
		case models.TransactionKindIncome:
			income += t.Amount
		case models.TransactionKindExpense:
			expense += t.Amount
		}
	}
	return income, expense
}

// expensesByCategory sums expense amounts per category, ordered by descending
// total. Ties keep the order categories were first seen in the input, so the
// result is stable for identical snapshots.
func expensesByCategory(transactions []models.Transaction) []models.CategoryTotal {
	totals := make(map[string]int64)
	order := make([]string, 0)

	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		if _, seen := totals[t.Category]; !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] += t.Amount
	}

	result := make([]models.CategoryTotal, 0, len(order))
	for _, category := range order {
		result = append(result, models.CategoryTotal{Category: category, Total: totals[category]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Total > result[j].Total
	})

	return result
}

// totalsByCategory sums all amounts per category regardless of kind, ordered
// by descending total, truncated to n entries (n <= 0 means no limit).
func totalsByCategory(transactions []models.Transaction, n int) []models.CategoryTotal {
	totals := make(map[string]int64)
	order := make([]string, 0)

	for _, t := range transactions {
		if _, seen := totals[t.Category]; !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] += t.Amount
	}

	result := make([]models.CategoryTotal, 0, len(order))
	for _, category := range order {
		result = append(result, models.CategoryTotal{Category: category, Total: totals[category]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Total > result[j].Total
	})

	if n > 0 && len(result) > n {
		result = result[:n]
	}

	return result
}

// topExpenses returns the n largest expense transactions, descending by
// amount. Ties keep the original retrieval order (stable sort).
func topExpenses(transactions []models.Transaction, n int) []models.Transaction {
	expenses := make([]models.Transaction, 0)
	for _, t := range transactions {
		if t.IsExpense() {
			expenses = append(expenses, t)
		}
	}

	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Amount > expenses[j].Amount
	})

	if n > 0 && len(expenses) > n {
		expenses = expenses[:n]
	}

	return expenses
}

// dailySeries sums amounts grouped by (day, kind), chronologically ascending
func dailySeries(transactions []models.Transaction) []models.SeriesPoint {
	type key struct {
		day  time.Time
		kind string
	}

	totals := make(map[key]int64)
	for _, t := range transactions {
		totals[key{day: t.Day(), kind: t.Kind}] += t.Amount
	}

	result := make([]models.SeriesPoint, 0, len(totals))
	for k, total := range totals {
		result = append(result, models.SeriesPoint{Date: k.day, Kind: k.kind, Total: total})
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].Kind < result[j].Kind
	})

	return result
}

// dailyCategoryExpenseSeries sums expense amounts grouped by (day, category),
// chronologically ascending
func dailyCategoryExpenseSeries(transactions []models.Transaction) []models.CategorySeriesPoint {
	type key struct {
		day      time.Time
		category string
	}

	totals := make(map[key]int64)
	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		totals[key{day: t.Day(), category: t.Category}] += t.Amount
	}

	result := make([]models.CategorySeriesPoint, 0, len(totals))
	for k, total := range totals {
		result = append(result, models.CategorySeriesPoint{Date: k.day, Category: k.category, Total: total})
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].Category < result[j].Category
	})

	return result
}

// monthlySeries sums amounts grouped by (YYYY-MM, kind), chronologically ascending
func monthlySeries(transactions []models.Transaction) []models.MonthSeriesPoint {
	type key struct {
		month string
		kind  string
	}

	totals := make(map[key]int64)
	for _, t := range transactions {
		totals[key{month: models.MonthKey(t.OccurredAt), kind: t.Kind}] += t.Amount
	}

	result := make([]models.MonthSeriesPoint, 0, len(totals))
	for k, total := range totals {
		result = append(result, models.MonthSeriesPoint{Month: k.month, Kind: k.kind, Total: total})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Month != result[j].Month {
			return result[i].Month < result[j].Month
		}
		return result[i].Kind < result[j].Kind
	})

	return result
}

// monthlyBalances computes income minus expense per YYYY-MM month,
// chronologically ascending
func monthlyBalances(transactions []models.Transaction) []models.MonthBalancePoint {
	balances := make(map[string]int64)
	for _, t := range transactions {
		month := models.MonthKey(t.OccurredAt)
		if t.IsIncome() {
			balances[month] += t.Amount
		} else if t.IsExpense() {
			balances[month] -= t.Amount
		}
	}

	result := make([]models.MonthBalancePoint, 0, len(balances))
	for month, balance := range balances {
		result = append(result, models.MonthBalancePoint{Month: month, Balance: balance})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Month < result[j].Month
	})

	return result
}

// weeklySeries sums amounts grouped by (ISO year-week, kind), chronologically
// ascending. Weeks are keyed "2006-W02" so lexical order is chronological.
func weeklySeries(transactions []models.Transaction) []models.WeekSeriesPoint {
	type key struct {
		yearWeek string
		kind     string
	}

	totals := make(map[key]int64)
	for _, t := range transactions {
		year, week := t.OccurredAt.ISOWeek()
		totals[key{yearWeek: fmt.Sprintf("%d-W%02d", year, week), kind: t.Kind}] += t.Amount
	}

	result := make([]models.WeekSeriesPoint, 0, len(totals))
	for k, total := range totals {
		result = append(result, models.WeekSeriesPoint{YearWeek: k.yearWeek, Kind: k.kind, Total: total})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].YearWeek != result[j].YearWeek {
			return result[i].YearWeek < result[j].YearWeek
		}
		return result[i].Kind < result[j].Kind
	})

	return result
}

// inMonth filters a snapshot to transactions of one calendar month, keeping
// the input order
func inMonth(transactions []models.Transaction, year int, month time.Month) []models.Transaction {
	filtered := make([]models.Transaction, 0)
	for _, t := range transactions {
		if t.OccurredAt.Year() == year && t.OccurredAt.Month() == month {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
