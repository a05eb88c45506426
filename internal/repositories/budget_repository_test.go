package repositories

import (
	"testing"

	"budget-tracker/internal/database"
	"budget-tracker/internal/models"

	"github.com/stretchr/testify/suite"
)

type BudgetRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo BudgetRepositoryInterface
}

func TestBudgetRepositorySuite(t *testing.T) {
	suite.Run(t, new(BudgetRepositoryTestSuite))
}

func (s *BudgetRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewBudgetRepository(s.db.DB)
}

func (s *BudgetRepositoryTestSuite) TestUpsert_CreatesThenOverwrites() {
	s.NoError(s.repo.Upsert(&models.Budget{Category: models.CategoryTransport, Limit: 40000, Month: "2026-03"}))

	s.NoError(s.repo.Upsert(&models.Budget{Category: models.CategoryTransport, Limit: 55000, Month: "2026-03"}))

	budgets, err := s.repo.GetByMonth("2026-03")
	s.NoError(err)
	s.Len(budgets, 1, "one row per (category, month)")
	s.Equal(int64(55000), budgets[0].Limit)
}

func (s *BudgetRepositoryTestSuite) TestUpsert_SameCategoryAcrossMonths() {
	s.NoError(s.repo.Upsert(&models.Budget{Category: models.CategoryTransport, Limit: 40000, Month: "2026-03"}))
	s.NoError(s.repo.Upsert(&models.Budget{Category: models.CategoryTransport, Limit: 45000, Month: "2026-04"}))

	march, err := s.repo.GetByMonth("2026-03")
	s.NoError(err)
	s.Len(march, 1)
	s.Equal(int64(40000), march[0].Limit)

	april, err := s.repo.GetByMonth("2026-04")
	s.NoError(err)
	s.Len(april, 1)
	s.Equal(int64(45000), april[0].Limit)
}

func (s *BudgetRepositoryTestSuite) TestGetByMonth_OrderedByCategory() {
	s.NoError(s.repo.Upsert(&models.Budget{Category: models.CategoryTransport, Limit: 40000, Month: "2026-03"}))
	s.NoError(s.repo.Upsert(&models.Budget{Category: models.CategoryAlimentation, Limit: 80000, Month: "2026-03"}))

	budgets, err := s.repo.GetByMonth("2026-03")
	s.NoError(err)
	s.Len(budgets, 2)
	s.Equal(models.CategoryAlimentation, budgets[0].Category)
	s.Equal(models.CategoryTransport, budgets[1].Category)
}

func (s *BudgetRepositoryTestSuite) TestGetByMonth_Empty() {
	budgets, err := s.repo.GetByMonth("2030-01")
	s.NoError(err)
	s.Empty(budgets)
	s.NotNil(budgets)
}

func (s *BudgetRepositoryTestSuite) TestUpsert_RejectsInvalid() {
	s.Error(s.repo.Upsert(&models.Budget{Category: models.CategoryTransport, Limit: -5, Month: "2026-03"}))
	s.Error(s.repo.Upsert(&models.Budget{Category: models.CategoryTransport, Limit: 40000, Month: "03/2026"}))
}
