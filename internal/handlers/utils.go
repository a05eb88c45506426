package handlers

import (
	"strings"
	"time"

	"budget-tracker/internal/errors"
	"budget-tracker/internal/models"
	"budget-tracker/internal/validation"
)

// parseFilterDates turns optional start/end query strings into time bounds.
// An end date given without a time component covers its whole day.
func parseFilterDates(startDate, endDate string) (*time.Time, *time.Time, *errors.ErrorCode) {
	var start, end *time.Time

	if startDate != "" {
		t, ok := validation.ParseDate(startDate)
		if !ok {
			code := errors.ValidationInvalidDate
			return nil, nil, &code
		}
		start = &t
	}

	if endDate != "" {
		t, ok := validation.ParseDate(endDate)
		if !ok {
			code := errors.ValidationInvalidDate
			return nil, nil, &code
		}
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		end = &t
	}

	if start != nil && end != nil && end.Before(*start) {
		code := errors.ValidationOutOfRange
		return nil, nil, &code
	}

	return start, end, nil
}

// splitList splits a comma-separated query value, dropping empty entries
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// buildTransactionFilter assembles a repository filter from query parameters
func buildTransactionFilter(startDate, endDate, category, categories, kinds, sortBy string) (models.TransactionFilter, *errors.ErrorCode) {
	start, end, errCode := parseFilterDates(startDate, endDate)
	if errCode != nil {
		return models.TransactionFilter{}, errCode
	}

	if !models.IsValidSort(sortBy) {
		code := errors.ValidationInvalidFormat
		return models.TransactionFilter{}, &code
	}

	kindList := splitList(kinds)
	for _, kind := range kindList {
		if !models.IsValidTransactionKind(kind) {
			code := errors.TransactionInvalidKind
			return models.TransactionFilter{}, &code
		}
	}

	return models.TransactionFilter{
		StartDate:  start,
		EndDate:    end,
		Category:   category,
		Categories: splitList(categories),
		Kinds:      kindList,
		SortBy:     sortBy,
	}, nil
}
