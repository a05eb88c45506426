package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionInvalidAmount      ErrorCode = "TRANSACTION_001"
	TransactionMissingDescription ErrorCode = "TRANSACTION_002"
	TransactionInvalidKind        ErrorCode = "TRANSACTION_003"
	TransactionInvalidCategory    ErrorCode = "TRANSACTION_004"
)

// Budget error codes (BUDGET_*)
const (
	BudgetInvalidLimit ErrorCode = "BUDGET_001"
	BudgetInvalidMonth ErrorCode = "BUDGET_002"
)

// Import error codes (IMPORT_*)
const (
	ImportMissingColumns ErrorCode = "IMPORT_001"
	ImportMalformedRow   ErrorCode = "IMPORT_002"
	ImportUnreadable     ErrorCode = "IMPORT_003"
	ImportEmpty          ErrorCode = "IMPORT_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Transaction errors
	TransactionInvalidAmount:      "Transaction amount must be a non-negative integer",
	TransactionMissingDescription: "Transaction description is required",
	TransactionInvalidKind:        "Transaction kind must be income or expense",
	TransactionInvalidCategory:    "Transaction category is required",

	// Budget errors
	BudgetInvalidLimit: "Budget limit must be a non-negative integer",
	BudgetInvalidMonth: "Budget month must use the YYYY-MM format",

	// Import errors
	ImportMissingColumns: "Import file is missing required columns",
	ImportMalformedRow:   "Import file contains a row that cannot be parsed",
	ImportUnreadable:     "Import file cannot be read",
	ImportEmpty:          "Import file contains no data rows",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
