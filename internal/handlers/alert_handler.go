package handlers

import (
	"net/http"

	"budget-tracker/internal/dto"
	apierrors "budget-tracker/internal/errors"
	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// AlertHandler handles alert HTTP requests
type AlertHandler struct {
	alertService services.AlertServiceInterface
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(alertService services.AlertServiceInterface) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

// CheckAlerts evaluates the alert rules over a transaction window
// @Summary Evaluate alerts
// @Description Run the alert rules: current-month negative balance, large expenses, and budget overruns
// @Tags Alerts
// @Produce json
// @Param start_date query string false "Window start (YYYY-MM-DD or RFC3339)"
// @Param end_date query string false "Window end (YYYY-MM-DD or RFC3339)"
// @Success 200 {object} dto.AlertsResponse "Alerts in rule order, possibly empty"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid date"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /alerts [get]
func (h *AlertHandler) CheckAlerts(c echo.Context) error {
	var query dto.AlertQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}

	start, end, errCode := parseFilterDates(query.StartDate, query.EndDate)
	if errCode != nil {
		return SendError(c, *errCode)
	}

	alerts, err := h.alertService.CheckAlerts(start, end)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AlertsResponse{Alerts: alerts, Count: len(alerts)})
}
