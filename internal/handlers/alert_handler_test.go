package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"budget-tracker/internal/database"
	"budget-tracker/internal/dto"
	"budget-tracker/internal/handlers"
	"budget-tracker/internal/middleware"
	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories"
	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type AlertHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	db      *database.DB
	handler *handlers.AlertHandler
}

func TestAlertHandlerSuite(t *testing.T) {
	suite.Run(t, new(AlertHandlerTestSuite))
}

func (s *AlertHandlerTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	transactionRepo := repositories.NewTransactionRepository(s.db.DB)
	budgetRepo := repositories.NewBudgetRepository(s.db.DB)
	s.handler = handlers.NewAlertHandler(services.NewAlertService(transactionRepo, budgetRepo, nil, nil))

	s.echo = echo.New()
	s.echo.Validator = handlers.NewValidator()
	s.echo.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
}

func (s *AlertHandlerTestSuite) get(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	if err := s.handler.CheckAlerts(c); err != nil {
		s.echo.HTTPErrorHandler(err, c)
	}
	return rec
}

func (s *AlertHandlerTestSuite) TestCheckAlerts_QuietLedger() {
	rec := s.get("/api/v1/alerts")
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.AlertsResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Zero(resp.Count)
	s.NotNil(resp.Alerts)
}

func (s *AlertHandlerTestSuite) TestCheckAlerts_LargeExpense() {
	// Recorded this month so the evaluation window covers it
	now := time.Now().UTC()
	database.CreateTestTransaction(s.T(), s.db, now.AddDate(0, 0, -1), "Loyer", models.CategoryLogement, 90000, models.TransactionKindExpense)

	rec := s.get("/api/v1/alerts")
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.AlertsResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.NotZero(resp.Count)

	found := false
	for _, a := range resp.Alerts {
		if a.Rule == models.AlertRuleLargeExpense {
			found = true
		}
	}
	s.True(found)
}

func (s *AlertHandlerTestSuite) TestCheckAlerts_BadDate() {
	rec := s.get("/api/v1/alerts?start_date=hier")
	s.Equal(http.StatusBadRequest, rec.Code)
}
