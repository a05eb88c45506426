package services

import (
	"io"
	"time"

	"budget-tracker/internal/models"
)

// LedgerServiceInterface records and retrieves transactions
type LedgerServiceInterface interface {
	AddTransaction(occurredAt time.Time, description, category string, amount int64, kind, notes string) (uint, error)
	QueryTransactions(filter models.TransactionFilter) ([]models.Transaction, error)
}

// StatsServiceInterface computes derived statistics from the ledger
type StatsServiceInterface interface {
	ComputeMonthlyStats(year int, month time.Month) (*models.MonthlyStats, error)
	ComputeRangeAnalysis(filter models.TransactionFilter) (*models.RangeAnalysis, error)
}

// AlertServiceInterface derives notices from transactions and budgets
type AlertServiceInterface interface {
	CheckAlerts(startDate, endDate *time.Time) ([]models.Alert, error)
}

// BudgetServiceInterface manages monthly category ceilings
type BudgetServiceInterface interface {
	SetBudget(category string, limit int64, month string) error
	QueryBudgets(month string) ([]models.Budget, error)
	Overview(month string) ([]models.BudgetUsage, error)
}

// ExportServiceInterface renders filtered transactions as downloadable files
type ExportServiceInterface interface {
	ExportCSV(w io.Writer, filter models.TransactionFilter) (int, error)
	ExportXLSX(w io.Writer, filter models.TransactionFilter) (int, error)
}

// ImportServiceInterface loads transactions from tabular files
type ImportServiceInterface interface {
	ImportCSV(r io.Reader) (int, error)
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	RecordTransaction(kind string)
	RecordImport(status string, rows int)
	RecordExport(format string)
	RecordAlerts(alerts []models.Alert)
	ObserveStatsDuration(duration time.Duration)
}
