package handlers

import (
	"errors"
	"net/http"

	"budget-tracker/internal/dto"
	apierrors "budget-tracker/internal/errors"
	"budget-tracker/internal/models"
	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler handles budget-related HTTP requests
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// SetBudget creates or overwrites a category's monthly ceiling
// @Summary Set a budget
// @Description Create or overwrite the expense ceiling of a category for one month
// @Tags Budgets
// @Accept json
// @Produce json
// @Param request body dto.SetBudgetRequest true "Budget to set"
// @Success 200 {object} SuccessResponse "Budget stored"
// @Failure 400 {object} errors.ErrorResponse "BUDGET_* - Rejected budget"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets [put]
func (h *BudgetHandler) SetBudget(c echo.Context) error {
	var req dto.SetBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.budgetService.SetBudget(req.Category, req.Limit, req.Month); err != nil {
		if code, ok := mapBudgetError(err); ok {
			return SendError(c, code)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Budget set"})
}

// ListBudgets retrieves the budgets of a month
// @Summary List budgets
// @Description Retrieve all budgets defined for one month
// @Tags Budgets
// @Produce json
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {object} dto.ListBudgetsResponse "The month's budgets"
// @Failure 400 {object} errors.ErrorResponse "BUDGET_002 - Invalid month"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets [get]
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	month := c.QueryParam("month")
	if !models.IsValidMonth(month) {
		return SendError(c, apierrors.BudgetInvalidMonth)
	}

	budgets, err := h.budgetService.QueryBudgets(month)
	if err != nil {
		if code, ok := mapBudgetError(err); ok {
			return SendError(c, code)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewListBudgetsResponse(month, budgets))
}

// BudgetOverview reports consumption against each of a month's ceilings
// @Summary Budget overview
// @Description Report, per budget of the month, how much of the ceiling the expenses have consumed
// @Tags Budgets
// @Produce json
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {object} dto.BudgetOverviewResponse "Per-budget usage rows"
// @Failure 400 {object} errors.ErrorResponse "BUDGET_002 - Invalid month"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets/overview [get]
func (h *BudgetHandler) BudgetOverview(c echo.Context) error {
	month := c.QueryParam("month")
	if !models.IsValidMonth(month) {
		return SendError(c, apierrors.BudgetInvalidMonth)
	}

	usages, err := h.budgetService.Overview(month)
	if err != nil {
		if code, ok := mapBudgetError(err); ok {
			return SendError(c, code)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBudgetOverviewResponse(month, usages))
}

// mapBudgetError maps budget sentinel errors to API error codes
func mapBudgetError(err error) (apierrors.ErrorCode, bool) {
	switch {
	case errors.Is(err, models.ErrNegativeLimit):
		return apierrors.BudgetInvalidLimit, true
	case errors.Is(err, models.ErrInvalidBudgetMonth):
		return apierrors.BudgetInvalidMonth, true
	case errors.Is(err, models.ErrCategoryRequired):
		return apierrors.TransactionInvalidCategory, true
	}
	return "", false
}
