package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories"

	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Transactions"

// exportHeader is shared by the CSV and XLSX exports. The column names match
// the import contract so an exported file can be imported back.
var exportHeader = []string{"id", "date", "description", "categorie", "montant", "type", "notes"}

type exportService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewExportService creates a new ExportServiceInterface instance
func NewExportService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) ExportServiceInterface {
	return &exportService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

// ExportCSV writes the filtered transactions as comma-separated rows and
// returns how many rows were written.
func (s *exportService) ExportCSV(w io.Writer, filter models.TransactionFilter) (int, error) {
	transactions, err := s.transactionRepo.GetByFilter(filter)
	if err != nil {
		slog.Error("failed to fetch transactions for CSV export", "error", err)
		return 0, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	writer := csv.NewWriter(w)

	if err := writer.Write(exportHeader); err != nil {
		return 0, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, t := range transactions {
		if err := writer.Write(exportRow(t)); err != nil {
			return 0, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush CSV: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordExport("csv")
	}

	slog.Info("CSV export generated", "row_count", len(transactions))

	return len(transactions), nil
}

// ExportXLSX writes the filtered transactions as a spreadsheet workbook and
// returns how many rows were written.
func (s *exportService) ExportXLSX(w io.Writer, filter models.TransactionFilter) (int, error) {
	transactions, err := s.transactionRepo.GetByFilter(filter)
	if err != nil {
		slog.Error("failed to fetch transactions for XLSX export", "error", err)
		return 0, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("failed to close workbook", "error", closeErr)
		}
	}()

	index, err := f.NewSheet(exportSheetName)
	if err != nil {
		return 0, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return 0, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	header := make([]interface{}, len(exportHeader))
	for i, col := range exportHeader {
		header[i] = col
	}
	if err := f.SetSheetRow(exportSheetName, "A1", &header); err != nil {
		return 0, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, t := range transactions {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return 0, fmt.Errorf("failed to address row: %w", err)
		}
		row := []interface{}{
			t.ID,
			t.OccurredAt.Format(time.RFC3339),
			t.Description,
			t.Category,
			t.Amount,
			t.Kind,
			t.Notes,
		}
		if err := f.SetSheetRow(exportSheetName, cell, &row); err != nil {
			return 0, fmt.Errorf("failed to write row: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return 0, fmt.Errorf("failed to write workbook: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordExport("xlsx")
	}

	slog.Info("XLSX export generated", "row_count", len(transactions))

	return len(transactions), nil
}

func exportRow(t models.Transaction) []string {
	return []string{
		strconv.FormatUint(uint64(t.ID), 10),
		t.OccurredAt.Format(time.RFC3339),
		t.Description,
		t.Category,
		strconv.FormatInt(t.Amount, 10),
		t.Kind,
		t.Notes,
	}
}
