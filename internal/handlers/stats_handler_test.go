package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"budget-tracker/internal/database"
	"budget-tracker/internal/dto"
	apierrors "budget-tracker/internal/errors"
	"budget-tracker/internal/handlers"
	"budget-tracker/internal/middleware"
	"budget-tracker/internal/models"
	"budget-tracker/internal/money"
	"budget-tracker/internal/repositories"
	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type StatsHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	db      *database.DB
	handler *handlers.StatsHandler
}

func TestStatsHandlerSuite(t *testing.T) {
	suite.Run(t, new(StatsHandlerTestSuite))
}

func (s *StatsHandlerTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	repo := repositories.NewTransactionRepository(s.db.DB)
	s.handler = handlers.NewStatsHandler(services.NewStatsService(repo, nil))

	s.echo = echo.New()
	s.echo.Validator = handlers.NewValidator()
	s.echo.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
}

func (s *StatsHandlerTestSuite) get(target string, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	if err := handler(c); err != nil {
		s.echo.HTTPErrorHandler(err, c)
	}
	return rec
}

func (s *StatsHandlerTestSuite) TestMonthlyStats() {
	database.CreateTestTransaction(s.T(), s.db, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), "Salaire", models.CategorySalaire, 250000, models.TransactionKindIncome)
	database.CreateTestTransaction(s.T(), s.db, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), "Courses", models.CategoryAlimentation, 45000, models.TransactionKindExpense)
	database.CreateTestTransaction(s.T(), s.db, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC), "Loyer", models.CategoryLogement, 60000, models.TransactionKindExpense)

	rec := s.get("/api/v1/stats/monthly?month=2026-03", s.handler.MonthlyStats)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.MonthlyStatsResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(145000), resp.Balance)
	s.Equal(money.Format(145000), resp.BalanceFormatted)
	s.Equal("58", resp.SavingsRate.String())
}

func (s *StatsHandlerTestSuite) TestMonthlyStats_EmptyMonthIsNoContent() {
	rec := s.get("/api/v1/stats/monthly?month=2026-01", s.handler.MonthlyStats)
	s.Equal(http.StatusNoContent, rec.Code)
	s.Empty(rec.Body.Bytes())
}

func (s *StatsHandlerTestSuite) TestMonthlyStats_InvalidMonth() {
	rec := s.get("/api/v1/stats/monthly?month=mars", s.handler.MonthlyStats)
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(apierrors.BudgetInvalidMonth), resp.Error.Code)
}

func (s *StatsHandlerTestSuite) TestRangeAnalysis() {
	database.CreateTestTransaction(s.T(), s.db, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), "Courses", models.CategoryAlimentation, 30000, models.TransactionKindExpense)
	database.CreateTestTransaction(s.T(), s.db, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), "Loyer", models.CategoryLogement, 60000, models.TransactionKindExpense)

	rec := s.get("/api/v1/stats/analysis?kinds=expense", s.handler.RangeAnalysis)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.RangeAnalysisResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(90000), resp.Total)
	s.Equal(2, resp.Count)
	s.Equal(money.Format(60000), resp.MaxFormatted)
}

func (s *StatsHandlerTestSuite) TestRangeAnalysis_EmptyWindowIsNoContent() {
	rec := s.get("/api/v1/stats/analysis?category=Inexistante", s.handler.RangeAnalysis)
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *StatsHandlerTestSuite) TestRangeAnalysis_BadDate() {
	rec := s.get("/api/v1/stats/analysis?start_date=hier", s.handler.RangeAnalysis)
	s.Equal(http.StatusBadRequest, rec.Code)
}
