package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"budget-tracker/internal/database"
	"budget-tracker/internal/dto"
	apierrors "budget-tracker/internal/errors"
	"budget-tracker/internal/handlers"
	"budget-tracker/internal/middleware"
	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories"
	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type BudgetHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	db      *database.DB
	handler *handlers.BudgetHandler
}

func TestBudgetHandlerSuite(t *testing.T) {
	suite.Run(t, new(BudgetHandlerTestSuite))
}

func (s *BudgetHandlerTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	budgetRepo := repositories.NewBudgetRepository(s.db.DB)
	transactionRepo := repositories.NewTransactionRepository(s.db.DB)
	s.handler = handlers.NewBudgetHandler(services.NewBudgetService(budgetRepo, transactionRepo))

	s.echo = echo.New()
	s.echo.Validator = handlers.NewValidator()
	s.echo.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
}

func (s *BudgetHandlerTestSuite) putBudget(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/budgets", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	if err := s.handler.SetBudget(c); err != nil {
		s.echo.HTTPErrorHandler(err, c)
	}
	return rec
}

func (s *BudgetHandlerTestSuite) TestSetBudget() {
	rec := s.putBudget(`{"category":"Transport","limit":40000,"month":"2026-03"}`)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.putBudget(`{"category":"Transport","limit":55000,"month":"2026-03"}`)
	s.Equal(http.StatusOK, rec.Code, "overwriting an existing pair is allowed")
}

func (s *BudgetHandlerTestSuite) TestSetBudget_Rejections() {
	testCases := []struct {
		name string
		body string
	}{
		{"negative limit", `{"category":"Transport","limit":-1,"month":"2026-03"}`},
		{"bad month", `{"category":"Transport","limit":40000,"month":"mars 2026"}`},
		{"missing category", `{"limit":40000,"month":"2026-03"}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec := s.putBudget(tc.body)
			s.Equal(http.StatusBadRequest, rec.Code)
		})
	}
}

func (s *BudgetHandlerTestSuite) TestListBudgets() {
	s.putBudget(`{"category":"Transport","limit":40000,"month":"2026-03"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/budgets?month=2026-03", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.ListBudgets(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListBudgetsResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("2026-03", resp.Month)
	s.Require().Len(resp.Budgets, 1)
	s.Equal(int64(40000), resp.Budgets[0].Limit)
	s.NotEmpty(resp.Budgets[0].LimitFormatted)
}

func (s *BudgetHandlerTestSuite) TestListBudgets_InvalidMonth() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/budgets?month=mars", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.ListBudgets(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(apierrors.BudgetInvalidMonth), resp.Error.Code)
}

func (s *BudgetHandlerTestSuite) TestBudgetOverview() {
	s.putBudget(`{"category":"Transport","limit":40000,"month":"2026-03"}`)
	database.CreateTestTransaction(s.T(), s.db, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), "Taxi", models.CategoryTransport, 45000, models.TransactionKindExpense)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/budgets/overview?month=2026-03", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.BudgetOverview(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.BudgetOverviewResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Budgets, 1)
	s.Equal(int64(45000), resp.Budgets[0].Spent)
	s.Equal(int64(-5000), resp.Budgets[0].Remaining)
}
