package dto

import (
	"budget-tracker/internal/models"
	"budget-tracker/internal/money"
)

// CreateTransactionRequest is the payload for recording a transaction.
// Date accepts RFC3339 or the plain YYYY-MM-DD form.
type CreateTransactionRequest struct {
	Date        string `json:"date" validate:"required"`
	Description string `json:"description" validate:"required,max=255"`
	Category    string `json:"category" validate:"required,max=50"`
	Amount      int64  `json:"amount" validate:"fcfa_amount"`
	Kind        string `json:"kind" validate:"required,transaction_kind"`
	Notes       string `json:"notes" validate:"max=1000"`
}

// CreateTransactionResponse carries the identifier of the stored transaction
type CreateTransactionResponse struct {
	ID uint `json:"id"`
}

// TransactionQuery contains the filtering options of transaction listings.
// Categories and kinds take comma-separated values.
type TransactionQuery struct {
	StartDate  string `query:"start_date"`
	EndDate    string `query:"end_date"`
	Category   string `query:"category"`
	Categories string `query:"categories"`
	Kinds      string `query:"kinds"`
	SortBy     string `query:"sort_by"`
}

// TransactionView is a transaction enriched with its formatted amount
type TransactionView struct {
	models.Transaction
	AmountFormatted string `json:"amount_formatted"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionView `json:"transactions"`
	Count        int               `json:"count"`
}

// NewTransactionView formats a transaction for API responses
func NewTransactionView(t models.Transaction) TransactionView {
	return TransactionView{
		Transaction:     t,
		AmountFormatted: money.Format(t.Amount),
	}
}

// NewListTransactionsResponse formats a transaction slice for API responses
func NewListTransactionsResponse(transactions []models.Transaction) ListTransactionsResponse {
	views := make([]TransactionView, 0, len(transactions))
	for _, t := range transactions {
		views = append(views, NewTransactionView(t))
	}
	return ListTransactionsResponse{
		Transactions: views,
		Count:        len(views),
	}
}
