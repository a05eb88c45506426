// Package money renders FCFA amounts. The franc CFA has no circulating
// subunit, so amounts are plain integers of the smallest currency unit.
package money

import (
	"errors"
	"strconv"
	"strings"
)

const (
	// Suffix is appended to every formatted amount
	Suffix = " FCFA"
	// GroupSeparator is the non-breaking space between thousands groups
	GroupSeparator = " "
)

var ErrInvalidAmount = errors.New("invalid FCFA amount")

// Format renders an integer amount as a grouped-by-thousands FCFA string,
// e.g. 250000 -> "250 000 FCFA" (with non-breaking spaces). Total over all
// int64 values, negatives included.
func Format(amount int64) string {
	digits := strconv.FormatInt(amount, 10)

	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}

	var b strings.Builder
	b.WriteString(sign)

	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteString(GroupSeparator)
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteString(GroupSeparator)
		}
	}

	b.WriteString(Suffix)
	return b.String()
}

// Parse is the inverse of Format. It strips the currency suffix and grouping
// separators (non-breaking or plain spaces) and returns the integer amount.
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, strings.TrimSpace(Suffix))
	s = strings.ReplaceAll(s, GroupSeparator, "")
	s = strings.ReplaceAll(s, " ", "")

	if s == "" {
		return 0, ErrInvalidAmount
	}

	amount, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return amount, nil
}
