package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories"
)

// Import failures, distinguishable by the handler layer
var (
	ErrImportUnreadable     = errors.New("import file is not readable as CSV")
	ErrImportMissingColumns = errors.New("import file is missing required columns")
	ErrImportEmpty          = errors.New("import file contains no rows")
	ErrImportInvalidRow     = errors.New("import row is invalid")
)

// requiredImportColumns must all be present in the header. Each logical column
// accepts a French or an English spelling.
var requiredImportColumns = map[string][]string{
	"date":        {"date"},
	"description": {"description"},
	"category":    {"categorie", "category"},
	"amount":      {"montant", "amount"},
	"kind":        {"type", "kind"},
}

// optionalImportColumns are used when present and ignored otherwise
var optionalImportColumns = map[string][]string{
	"notes": {"notes"},
}

// importDateLayouts are tried in order when parsing the date column
var importDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// importKindAliases maps accepted spellings of the kind column to the
// canonical transaction kinds
var importKindAliases = map[string]string{
	"income":  models.TransactionKindIncome,
	"revenu":  models.TransactionKindIncome,
	"expense": models.TransactionKindExpense,
	"dépense": models.TransactionKindExpense,
	"depense": models.TransactionKindExpense,
}

type importService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewImportService creates a new ImportServiceInterface instance
func NewImportService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) ImportServiceInterface {
	return &importService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

// ImportCSV parses and validates every row before touching the store, then
// inserts the whole batch in a single database transaction. Any invalid row
// rejects the file wholesale with zero rows inserted.
func (s *importService) ImportCSV(r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		s.recordImport("rejected", 0)
		return 0, ErrImportEmpty
	}
	if err != nil {
		s.recordImport("rejected", 0)
		return 0, fmt.Errorf("%w: %v", ErrImportUnreadable, err)
	}

	columns, err := resolveImportColumns(header)
	if err != nil {
		s.recordImport("rejected", 0)
		return 0, err
	}

	transactions := make([]models.Transaction, 0)
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			s.recordImport("rejected", 0)
			return 0, fmt.Errorf("%w: %v", ErrImportUnreadable, err)
		}

		transaction, err := parseImportRow(record, columns, line)
		if err != nil {
			s.recordImport("rejected", 0)
			return 0, err
		}
		transactions = append(transactions, transaction)
	}

	if len(transactions) == 0 {
		s.recordImport("rejected", 0)
		return 0, ErrImportEmpty
	}

	if err := s.transactionRepo.CreateBatch(transactions); err != nil {
		s.recordImport("failed", 0)
		slog.Error("failed to insert imported transactions",
			"row_count", len(transactions),
			"error", err)
		return 0, fmt.Errorf("failed to insert imported transactions: %w", err)
	}

	s.recordImport("accepted", len(transactions))
	slog.Info("CSV import accepted", "row_count", len(transactions))

	return len(transactions), nil
}

func (s *importService) recordImport(status string, rows int) {
	if s.metrics != nil {
		s.metrics.RecordImport(status, rows)
	}
}

// resolveImportColumns maps logical column names to header positions. Header
// matching is case-insensitive and tolerates surrounding whitespace.
func resolveImportColumns(header []string) (map[string]int, error) {
	positions := make(map[string]int)
	for i, name := range header {
		positions[strings.ToLower(strings.TrimSpace(name))] = i
	}

	columns := make(map[string]int)
	missing := make([]string, 0)

	for logical, aliases := range requiredImportColumns {
		found := false
		for _, alias := range aliases {
			if pos, ok := positions[alias]; ok {
				columns[logical] = pos
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, aliases[0])
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrImportMissingColumns, strings.Join(missing, ", "))
	}

	for logical, aliases := range optionalImportColumns {
		for _, alias := range aliases {
			if pos, ok := positions[alias]; ok {
				columns[logical] = pos
				break
			}
		}
	}

	return columns, nil
}

func parseImportRow(record []string, columns map[string]int, line int) (models.Transaction, error) {
	field := func(logical string) string {
		pos, ok := columns[logical]
		if !ok || pos >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[pos])
	}

	occurredAt, err := parseImportDate(field("date"))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%w: line %d: %v", ErrImportInvalidRow, line, err)
	}

	amount, err := strconv.ParseInt(field("amount"), 10, 64)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%w: line %d: invalid amount %q", ErrImportInvalidRow, line, field("amount"))
	}

	kind, ok := importKindAliases[strings.ToLower(field("kind"))]
	if !ok {
		return models.Transaction{}, fmt.Errorf("%w: line %d: invalid type %q", ErrImportInvalidRow, line, field("kind"))
	}

	transaction := models.Transaction{
		OccurredAt:  occurredAt,
		Description: field("description"),
		Category:    field("category"),
		Amount:      amount,
		Kind:        kind,
		Notes:       field("notes"),
	}

	if err := transaction.Validate(); err != nil {
		return models.Transaction{}, fmt.Errorf("%w: line %d: %v", ErrImportInvalidRow, line, err)
	}

	return transaction, nil
}

func parseImportDate(value string) (time.Time, error) {
	for _, layout := range importDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}
