package handlers

import (
	"net/http"
	"time"

	"budget-tracker/internal/dto"
	apierrors "budget-tracker/internal/errors"
	"budget-tracker/internal/models"
	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// StatsHandler handles aggregation HTTP requests
type StatsHandler struct {
	statsService services.StatsServiceInterface
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService services.StatsServiceInterface) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// MonthlyStats aggregates one calendar month of the ledger
// @Summary Monthly statistics
// @Description Aggregate one calendar month: totals, balance, savings rate, and breakdowns. A month with no transactions returns 204.
// @Tags Stats
// @Produce json
// @Param month query string false "Month (YYYY-MM), defaults to the current month"
// @Success 200 {object} dto.MonthlyStatsResponse "The month's aggregation"
// @Success 204 "No transactions recorded for the month"
// @Failure 400 {object} errors.ErrorResponse "BUDGET_002 - Invalid month"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /stats/monthly [get]
func (h *StatsHandler) MonthlyStats(c echo.Context) error {
	month := c.QueryParam("month")
	if month == "" {
		month = models.MonthKey(time.Now())
	}

	period, err := time.Parse("2006-01", month)
	if err != nil {
		return SendError(c, apierrors.BudgetInvalidMonth)
	}

	stats, err := h.statsService.ComputeMonthlyStats(period.Year(), period.Month())
	if err != nil {
		return SendSystemError(c, err)
	}

	if stats == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, dto.NewMonthlyStatsResponse(*stats))
}

// RangeAnalysis aggregates an arbitrary filtered window of the ledger
// @Summary Range analysis
// @Description Aggregate a filtered window: total, average, max, and trend series. An empty window returns 204.
// @Tags Stats
// @Produce json
// @Param start_date query string false "Window start (YYYY-MM-DD or RFC3339)"
// @Param end_date query string false "Window end (YYYY-MM-DD or RFC3339)"
// @Param category query string false "Filter by a single category"
// @Param categories query string false "Filter by categories (comma-separated)"
// @Param kinds query string false "Filter by kinds (comma-separated)" Enums(income, expense)
// @Success 200 {object} dto.RangeAnalysisResponse "The window's aggregation"
// @Success 204 "No transactions in the window"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_* - Invalid filters"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /stats/analysis [get]
func (h *StatsHandler) RangeAnalysis(c echo.Context) error {
	var query dto.RangeAnalysisQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}

	filter, errCode := buildTransactionFilter(
		query.StartDate, query.EndDate, query.Category, query.Categories, query.Kinds, "")
	if errCode != nil {
		return SendError(c, *errCode)
	}

	analysis, err := h.statsService.ComputeRangeAnalysis(filter)
	if err != nil {
		return SendSystemError(c, err)
	}

	if analysis == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, dto.NewRangeAnalysisResponse(*analysis))
}
