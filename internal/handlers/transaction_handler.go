package handlers

import (
	"errors"
	"net/http"

	"budget-tracker/internal/dto"
	apierrors "budget-tracker/internal/errors"
	"budget-tracker/internal/models"
	"budget-tracker/internal/services"
	"budget-tracker/internal/validation"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	ledgerService services.LedgerServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(ledgerService services.LedgerServiceInterface) *TransactionHandler {
	return &TransactionHandler{ledgerService: ledgerService}
}

// CreateTransaction records one income or expense entry
// @Summary Record a transaction
// @Description Validate and append one income or expense entry to the ledger
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction to record"
// @Success 201 {object} dto.CreateTransactionResponse "Identifier of the stored transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_* or TRANSACTION_* - Rejected entry"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	occurredAt, ok := validation.ParseDate(req.Date)
	if !ok {
		return SendError(c, apierrors.ValidationInvalidDate)
	}

	id, err := h.ledgerService.AddTransaction(occurredAt, req.Description, req.Category, req.Amount, req.Kind, req.Notes)
	if err != nil {
		if code, ok := mapTransactionError(err); ok {
			return SendError(c, code)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateTransactionResponse{ID: id})
}

// ListTransactions retrieves the filtered transaction history
// @Summary List transactions
// @Description Retrieve the filtered transaction history, most recent first by default
// @Tags Transactions
// @Produce json
// @Param start_date query string false "Window start (YYYY-MM-DD or RFC3339)"
// @Param end_date query string false "Window end (YYYY-MM-DD or RFC3339)"
// @Param category query string false "Filter by a single category"
// @Param categories query string false "Filter by categories (comma-separated)"
// @Param kinds query string false "Filter by kinds (comma-separated)" Enums(income, expense)
// @Param sort_by query string false "Sort order" Enums(date_desc, date_asc, amount_asc, amount_desc)
// @Success 200 {object} dto.ListTransactionsResponse "Matching transactions"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_* - Invalid filters"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	var query dto.TransactionQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}

	filter, errCode := buildTransactionFilter(
		query.StartDate, query.EndDate, query.Category, query.Categories, query.Kinds, query.SortBy)
	if errCode != nil {
		return SendError(c, *errCode)
	}

	transactions, err := h.ledgerService.QueryTransactions(filter)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewListTransactionsResponse(transactions))
}

// mapTransactionError maps ledger sentinel errors to API error codes
func mapTransactionError(err error) (apierrors.ErrorCode, bool) {
	switch {
	case errors.Is(err, models.ErrNegativeAmount):
		return apierrors.TransactionInvalidAmount, true
	case errors.Is(err, models.ErrDescriptionRequired):
		return apierrors.TransactionMissingDescription, true
	case errors.Is(err, models.ErrInvalidTransactionKind):
		return apierrors.TransactionInvalidKind, true
	case errors.Is(err, models.ErrCategoryRequired):
		return apierrors.TransactionInvalidCategory, true
	case errors.Is(err, models.ErrDateRequired):
		return apierrors.ValidationInvalidDate, true
	}
	return "", false
}
