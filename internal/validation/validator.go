package validation

import (
	"reflect"
	"strings"
	"time"

	"budget-tracker/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("transaction_kind", validateTransactionKind)
	_ = v.RegisterValidation("budget_month", validateBudgetMonth)
	_ = v.RegisterValidation("fcfa_amount", validateFCFAAmount)
	_ = v.RegisterValidation("known_category", validateKnownCategory)
	_ = v.RegisterValidation("sort_order", validateSortOrder)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateTransactionKind validates that a kind is income or expense
func validateTransactionKind(fl validator.FieldLevel) bool {
	return models.IsValidTransactionKind(fl.Field().String())
}

// validateBudgetMonth validates that a month uses the YYYY-MM format and
// denotes a real calendar month
func validateBudgetMonth(fl validator.FieldLevel) bool {
	return models.IsValidMonth(fl.Field().String())
}

// validateFCFAAmount validates that an amount is a non-negative whole number.
// FCFA carries no subunits, so amounts are plain integers.
func validateFCFAAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() >= 0
	default:
		return false
	}
}

// validateKnownCategory validates that a category is one of the predefined
// ones. Free-text categories are allowed elsewhere; this tag is for endpoints
// that want the closed set.
func validateKnownCategory(fl validator.FieldLevel) bool {
	return models.IsKnownCategory(fl.Field().String())
}

// validateSortOrder validates that a sort key is one of the supported orders
func validateSortOrder(fl validator.FieldLevel) bool {
	return models.IsValidSort(fl.Field().String())
}

// ParseDate parses a date accepting RFC3339 or the plain YYYY-MM-DD form
func ParseDate(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
