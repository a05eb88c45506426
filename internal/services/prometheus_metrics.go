package services

import (
	"time"

	"budget-tracker/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsTotal *prometheus.CounterVec
	importsTotal      *prometheus.CounterVec
	importedRowsTotal prometheus.Counter
	exportsTotal      *prometheus.CounterVec
	alertsTotal       *prometheus.CounterVec
	statsDuration     prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transactions_total",
				Help: "Total number of transactions recorded",
			},
			[]string{"kind"},
		),
		importsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_imports_total",
				Help: "Total number of CSV import attempts",
			},
			[]string{"status"},
		),
		importedRowsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_imported_rows_total",
				Help: "Total number of rows inserted by CSV imports",
			},
		),
		exportsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_exports_total",
				Help: "Total number of exports generated",
			},
			[]string{"format"},
		),
		alertsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_alerts_total",
				Help: "Total number of alerts emitted by evaluations",
			},
			[]string{"rule", "severity"},
		),
		statsDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_stats_duration_seconds",
				Help:    "Aggregation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

func (m *PrometheusMetrics) RecordTransaction(kind string) {
	m.transactionsTotal.WithLabelValues(kind).Inc()
}

func (m *PrometheusMetrics) RecordImport(status string, rows int) {
	m.importsTotal.WithLabelValues(status).Inc()
	if rows > 0 {
		m.importedRowsTotal.Add(float64(rows))
	}
}

func (m *PrometheusMetrics) RecordExport(format string) {
	m.exportsTotal.WithLabelValues(format).Inc()
}

func (m *PrometheusMetrics) RecordAlerts(alerts []models.Alert) {
	for _, alert := range alerts {
		m.alertsTotal.WithLabelValues(alert.Rule, alert.Severity).Inc()
	}
}

func (m *PrometheusMetrics) ObserveStatsDuration(duration time.Duration) {
	m.statsDuration.Observe(duration.Seconds())
}
