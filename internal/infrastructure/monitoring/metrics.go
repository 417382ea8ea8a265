package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type DBMetrics struct {
	QueryDuration *prometheus.HistogramVec
}

type BusinessMetrics struct {
	EligibilityDecisions *prometheus.CounterVec
	LoansIssued          prometheus.Counter
	CustomersRegistered  prometheus.Counter
	IngestRows           *prometheus.CounterVec
}

var (
	DB = DBMetrics{
		QueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "credit_approval_db_query_duration_seconds",
				Help:    "Histogram of database query latencies.",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"query_name", "status"},
		),
	}

	Business = BusinessMetrics{
		EligibilityDecisions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "credit_approval_eligibility_decisions_total",
				Help: "Total number of eligibility decisions by outcome and reason.",
			},
			[]string{"approved", "reason"},
		),
		LoansIssued: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "credit_approval_loans_issued_total",
				Help: "Total number of loans successfully issued.",
			},
		),
		CustomersRegistered: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "credit_approval_customers_registered_total",
				Help: "Total number of customers successfully registered.",
			},
		),
		IngestRows: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "credit_approval_ingest_rows_total",
				Help: "Total number of spreadsheet rows processed by the ingest job.",
			},
			[]string{"entity", "status"},
		),
	}
)

func RecordDBQuery(queryName, status string, duration time.Duration) {
	DB.QueryDuration.WithLabelValues(queryName, status).Observe(duration.Seconds())
}

func RecordEligibilityDecision(approved bool, reason string) {
	label := "false"
	if approved {
		label = "true"
	}
	Business.EligibilityDecisions.WithLabelValues(label, reason).Inc()
}

func RecordLoanIssued() {
	Business.LoansIssued.Inc()
}

func RecordCustomerRegistered() {
	Business.CustomersRegistered.Inc()
}

func RecordIngestRows(entity, status string, n int) {
	if n <= 0 {
		return
	}
	Business.IngestRows.WithLabelValues(entity, status).Add(float64(n))
}
