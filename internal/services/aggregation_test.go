package services

import (
	"testing"
	"time"

	"budget-tracker/internal/models"

	"github.com/stretchr/testify/suite"
)

type AggregationTestSuite struct {
	suite.Suite
}

func TestAggregationSuite(t *testing.T) {
	suite.Run(t, new(AggregationTestSuite))
}

func txn(day int, description, category string, amount int64, kind string) models.Transaction {
	return models.Transaction{
		OccurredAt:  time.Date(2026, 3, day, 10, 0, 0, 0, time.UTC),
		Description: description,
		Category:    category,
		Amount:      amount,
		Kind:        kind,
	}
}

func (s *AggregationTestSuite) TestSumByKind() {
	transactions := []models.Transaction{
		txn(1, "Salaire", models.CategorySalaire, 250000, models.TransactionKindIncome),
		txn(5, "Courses", models.CategoryAlimentation, 45000, models.TransactionKindExpense),
		txn(20, "Loyer", models.CategoryLogement, 60000, models.TransactionKindExpense),
	}

	income, expense := sumByKind(transactions)
	s.Equal(int64(250000), income)
	s.Equal(int64(105000), expense)
}

func (s *AggregationTestSuite) TestSumByKind_Empty() {
	income, expense := sumByKind(nil)
	s.Zero(income)
	s.Zero(expense)
}

func (s *AggregationTestSuite) TestExpensesByCategory() {
	transactions := []models.Transaction{
		txn(1, "Salaire", models.CategorySalaire, 250000, models.TransactionKindIncome),
		txn(2, "Courses", models.CategoryAlimentation, 30000, models.TransactionKindExpense),
		txn(3, "Restaurant", models.CategoryAlimentation, 15000, models.TransactionKindExpense),
		txn(4, "Taxi", models.CategoryTransport, 5000, models.TransactionKindExpense),
	}

	breakdown := expensesByCategory(transactions)
	s.Len(breakdown, 2, "income categories are excluded")
	s.Equal(models.CategoryAlimentation, breakdown[0].Category)
	s.Equal(int64(45000), breakdown[0].Total)
	s.Equal(models.CategoryTransport, breakdown[1].Category)
	s.Equal(int64(5000), breakdown[1].Total)
}

func (s *AggregationTestSuite) TestExpensesByCategory_TieKeepsFirstSeenOrder() {
	transactions := []models.Transaction{
		txn(1, "A", models.CategoryLoisirs, 10000, models.TransactionKindExpense),
		txn(2, "B", models.CategoryTransport, 10000, models.TransactionKindExpense),
	}

	breakdown := expensesByCategory(transactions)
	s.Equal(models.CategoryLoisirs, breakdown[0].Category)
	s.Equal(models.CategoryTransport, breakdown[1].Category)
}

func (s *AggregationTestSuite) TestTopExpenses() {
	transactions := []models.Transaction{
		txn(1, "Petit", models.CategoryAutre, 1000, models.TransactionKindExpense),
		txn(2, "Gros", models.CategoryLogement, 90000, models.TransactionKindExpense),
		txn(3, "Moyen", models.CategoryAlimentation, 30000, models.TransactionKindExpense),
		txn(4, "Salaire", models.CategorySalaire, 250000, models.TransactionKindIncome),
	}

	top := topExpenses(transactions, 2)
	s.Len(top, 2)
	s.Equal("Gros", top[0].Description)
	s.Equal("Moyen", top[1].Description)
}

func (s *AggregationTestSuite) TestDailySeries() {
	transactions := []models.Transaction{
		txn(5, "Courses matin", models.CategoryAlimentation, 10000, models.TransactionKindExpense),
		txn(5, "Courses soir", models.CategoryAlimentation, 5000, models.TransactionKindExpense),
		txn(5, "Prime", models.CategoryBonus, 20000, models.TransactionKindIncome),
		txn(6, "Taxi", models.CategoryTransport, 2000, models.TransactionKindExpense),
	}

	series := dailySeries(transactions)
	s.Len(series, 3)
	s.Equal(models.TransactionKindExpense, series[0].Kind)
	s.Equal(int64(15000), series[0].Total, "same-day same-kind amounts merge")
	s.Equal(models.TransactionKindIncome, series[1].Kind)
	s.True(series[2].Date.After(series[1].Date))
}

func (s *AggregationTestSuite) TestMonthlySeriesAndBalances() {
	transactions := []models.Transaction{
		txn(1, "Salaire", models.CategorySalaire, 250000, models.TransactionKindIncome),
		txn(5, "Courses", models.CategoryAlimentation, 45000, models.TransactionKindExpense),
		{
			OccurredAt:  time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
			Description: "Loyer avril",
			Category:    models.CategoryLogement,
			Amount:      60000,
			Kind:        models.TransactionKindExpense,
		},
	}

	series := monthlySeries(transactions)
	s.Len(series, 3)
	s.Equal("2026-03", series[0].Month)
	s.Equal("2026-04", series[2].Month)

	balances := monthlyBalances(transactions)
	s.Len(balances, 2)
	s.Equal(int64(205000), balances[0].Balance)
	s.Equal(int64(-60000), balances[1].Balance)
}

func (s *AggregationTestSuite) TestWeeklySeries() {
	transactions := []models.Transaction{
		txn(2, "Lundi", models.CategoryAlimentation, 1000, models.TransactionKindExpense),
		txn(3, "Mardi", models.CategoryAlimentation, 2000, models.TransactionKindExpense),
		txn(9, "Semaine suivante", models.CategoryAlimentation, 4000, models.TransactionKindExpense),
	}

	series := weeklySeries(transactions)
	s.Len(series, 2)
	s.Equal(int64(3000), series[0].Total)
	s.Equal(int64(4000), series[1].Total)
	s.Less(series[0].YearWeek, series[1].YearWeek)
}

func (s *AggregationTestSuite) TestInMonth() {
	transactions := []models.Transaction{
		txn(1, "Mars", models.CategoryAutre, 1000, models.TransactionKindExpense),
		{
			OccurredAt:  time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			Description: "Avril",
			Category:    models.CategoryAutre,
			Amount:      2000,
			Kind:        models.TransactionKindExpense,
		},
	}

	march := inMonth(transactions, 2026, time.March)
	s.Len(march, 1)
	s.Equal("Mars", march[0].Description)

	s.Empty(inMonth(transactions, 2025, time.March))
}
