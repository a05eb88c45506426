package models

import "time"

// Sort orders for transaction queries. Default is most recent first.
const (
	SortDateDesc   = "date_desc"
	SortDateAsc    = "date_asc"
	SortAmountAsc  = "amount_asc"
	SortAmountDesc = "amount_desc"
)

// TransactionFilter narrows transaction queries. All filters are conjunctive;
// nil/empty fields impose no constraint.
type TransactionFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Category   string
	Categories []string
	Kinds      []string
	SortBy     string
}

// IsValidSort checks a sort order identifier
func IsValidSort(sortBy string) bool {
	switch sortBy {
	case "", SortDateDesc, SortDateAsc, SortAmountAsc, SortAmountDesc:
		return true
	}
	return false
}
