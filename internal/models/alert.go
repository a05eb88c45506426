package models

// Alert severities
const (
	AlertSeverityDanger  = "danger"
	AlertSeverityWarning = "warning"
)

// Alert rule identifiers, in evaluation order
const (
	AlertRuleNegativeBalance = "negative_balance"
	AlertRuleLargeExpense    = "large_expense"
	AlertRuleBudgetOverrun   = "budget_overrun"
)

// Alert is a derived, human-readable notice computed from aggregated
// transaction and budget data. Alerts are never persisted.
type Alert struct {
	Severity string `json:"severity"`
	Rule     string `json:"rule"`
	Message  string `json:"message"`
}
