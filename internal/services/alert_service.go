package services

import (
	"fmt"
	"log/slog"
	"time"

	"budget-tracker/internal/models"
	"budget-tracker/internal/money"
	"budget-tracker/internal/repositories"
)

const (
	// DefaultLargeExpenseThreshold flags expenses strictly above 50 000 FCFA
	DefaultLargeExpenseThreshold int64 = 50000
	// DefaultMaxLargeExpenseAlerts bounds alert volume per evaluation
	DefaultMaxLargeExpenseAlerts = 3
)

// AlertEvaluator derives alerts from a transaction snapshot and a budget set.
// It performs no I/O: everything it needs arrives as arguments, plus a clock
// reading to resolve "current month".
type AlertEvaluator struct {
	LargeExpenseThreshold int64
	MaxLargeExpenseAlerts int
}

// NewAlertEvaluator creates an evaluator with the default thresholds
func NewAlertEvaluator() *AlertEvaluator {
	return &AlertEvaluator{
		LargeExpenseThreshold: DefaultLargeExpenseThreshold,
		MaxLargeExpenseAlerts: DefaultMaxLargeExpenseAlerts,
	}
}

// Evaluate runs the three rule families in a fixed order; later rules never
// suppress earlier ones.
//
// Rule 1 deliberately looks only at transactions of now's calendar month,
// whatever window the caller's snapshot spans, matching the behavior of the
// original ledger. Rules 2 and 3 evaluate the whole snapshot.
func (e *AlertEvaluator) Evaluate(transactions []models.Transaction, budgets []models.Budget, now time.Time) []models.Alert {
	alerts := make([]models.Alert, 0)

	// Rule 1: negative balance of the current calendar month
	currentMonth := inMonth(transactions, now.Year(), now.Month())
	if len(currentMonth) > 0 {
		income, expense := sumByKind(currentMonth)
		if balance := income - expense; balance < 0 {
			alerts = append(alerts, models.Alert{
				Severity: models.AlertSeverityDanger,
				Rule:     models.AlertRuleNegativeBalance,
				Message:  fmt.Sprintf("Solde négatif: %s", money.Format(balance)),
			})
		}
	}

	// Rule 2: large expenses, capped at the first few in snapshot order
	emitted := 0
	for _, t := range transactions {
		if emitted >= e.MaxLargeExpenseAlerts {
			break
		}
		if t.IsExpense() && t.Amount > e.LargeExpenseThreshold {
			alerts = append(alerts, models.Alert{
				Severity: models.AlertSeverityWarning,
				Rule:     models.AlertRuleLargeExpense,
				Message:  fmt.Sprintf("Grosse dépense: %s - %s", t.Description, money.Format(t.Amount)),
			})
			emitted++
		}
	}

	// Rule 3: budget overruns, strictly greater than the limit
	for _, budget := range budgets {
		var spent int64
		for _, t := range transactions {
			if t.IsExpense() && t.Category == budget.Category {
				spent += t.Amount
			}
		}
		if spent > budget.Limit {
			alerts = append(alerts, models.Alert{
				Severity: models.AlertSeverityWarning,
				Rule:     models.AlertRuleBudgetOverrun,
				Message: fmt.Sprintf("Budget dépassé %s: %s/%s",
					budget.Category, money.Format(spent), money.Format(budget.Limit)),
			})
		}
	}

	return alerts
}

type alertService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	evaluator       *AlertEvaluator
	metrics         MetricsRecorderInterface
	now             func() time.Time
}

// NewAlertService creates a new AlertServiceInterface instance
func NewAlertService(
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	evaluator *AlertEvaluator,
	metrics MetricsRecorderInterface,
) AlertServiceInterface {
	if evaluator == nil {
		evaluator = NewAlertEvaluator()
	}
	return &alertService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		evaluator:       evaluator,
		metrics:         metrics,
		now:             time.Now,
	}
}

// CheckAlerts fetches the transaction window and the current month's budgets,
// then hands both to the pure evaluator.
func (s *alertService) CheckAlerts(startDate, endDate *time.Time) ([]models.Alert, error) {
	transactions, err := s.transactionRepo.GetByFilter(models.TransactionFilter{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		slog.Error("failed to fetch transactions for alerts", "error", err)
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	now := s.now()

	budgets, err := s.budgetRepo.GetByMonth(models.MonthKey(now))
	if err != nil {
		slog.Error("failed to fetch budgets for alerts", "error", err)
		return nil, fmt.Errorf("failed to fetch budgets: %w", err)
	}

	alerts := s.evaluator.Evaluate(transactions, budgets, now)

	if s.metrics != nil {
		s.metrics.RecordAlerts(alerts)
	}

	slog.Info("alerts evaluated",
		"transaction_count", len(transactions),
		"budget_count", len(budgets),
		"alert_count", len(alerts))

	return alerts, nil
}
