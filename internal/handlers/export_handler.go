package handlers

import (
	"fmt"
	"net/http"
	"time"

	"budget-tracker/internal/dto"
	apierrors "budget-tracker/internal/errors"
	"budget-tracker/internal/models"
	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handles download HTTP requests
type ExportHandler struct {
	exportService services.ExportServiceInterface
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService services.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportCSV streams the filtered transactions as a CSV file
// @Summary Export CSV
// @Description Download the filtered transaction history as a CSV file
// @Tags Export
// @Produce text/csv
// @Param start_date query string false "Window start (YYYY-MM-DD or RFC3339)"
// @Param end_date query string false "Window end (YYYY-MM-DD or RFC3339)"
// @Param category query string false "Filter by a single category"
// @Param categories query string false "Filter by categories (comma-separated)"
// @Param kinds query string false "Filter by kinds (comma-separated)" Enums(income, expense)
// @Param sort_by query string false "Sort order" Enums(date_desc, date_asc, amount_asc, amount_desc)
// @Success 200 {string} string "CSV payload"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_* - Invalid filters"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /export/csv [get]
func (h *ExportHandler) ExportCSV(c echo.Context) error {
	filter, errCode := h.bindFilter(c)
	if errCode != nil {
		return SendError(c, *errCode)
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="transactions_%s.csv"`, time.Now().Format("20060102")))
	c.Response().WriteHeader(http.StatusOK)

	if _, err := h.exportService.ExportCSV(c.Response(), filter); err != nil {
		// Headers are already out; all we can do is log via the error handler
		return err
	}

	return nil
}

// ExportXLSX streams the filtered transactions as a spreadsheet workbook
// @Summary Export XLSX
// @Description Download the filtered transaction history as an XLSX workbook
// @Tags Export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start_date query string false "Window start (YYYY-MM-DD or RFC3339)"
// @Param end_date query string false "Window end (YYYY-MM-DD or RFC3339)"
// @Param category query string false "Filter by a single category"
// @Param categories query string false "Filter by categories (comma-separated)"
// @Param kinds query string false "Filter by kinds (comma-separated)" Enums(income, expense)
// @Param sort_by query string false "Sort order" Enums(date_desc, date_asc, amount_asc, amount_desc)
// @Success 200 {string} binary "Workbook payload"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_* - Invalid filters"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /export/xlsx [get]
func (h *ExportHandler) ExportXLSX(c echo.Context) error {
	filter, errCode := h.bindFilter(c)
	if errCode != nil {
		return SendError(c, *errCode)
	}

	c.Response().Header().Set(echo.HeaderContentType, xlsxContentType)
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="transactions_%s.xlsx"`, time.Now().Format("20060102")))
	c.Response().WriteHeader(http.StatusOK)

	if _, err := h.exportService.ExportXLSX(c.Response(), filter); err != nil {
		return err
	}

	return nil
}

func (h *ExportHandler) bindFilter(c echo.Context) (models.TransactionFilter, *apierrors.ErrorCode) {
	var query dto.ExportQuery
	if err := c.Bind(&query); err != nil {
		code := apierrors.ValidationGeneral
		return models.TransactionFilter{}, &code
	}

	return buildTransactionFilter(
		query.StartDate, query.EndDate, query.Category, query.Categories, query.Kinds, query.SortBy)
}
