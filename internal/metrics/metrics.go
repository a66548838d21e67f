// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RegistrationsTotal counts registration attempts by outcome kind
	RegistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "social_wallet_registrations_total",
			Help: "Total number of invite-gated registrations",
		},
		[]string{"result"},
	)

	// ChallengesIssued counts signing challenges issued or replaced
	ChallengesIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "social_wallet_challenges_issued_total",
			Help: "Total number of signing challenges issued",
		},
	)

	// WalletLinksTotal counts social wallet verification attempts by outcome kind
	WalletLinksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "social_wallet_links_total",
			Help: "Total number of social wallet verification attempts",
		},
		[]string{"result"},
	)

	// RequestDuration tracks service method latency
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "social_wallet_service_duration_seconds",
			Help:    "Service method duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method"},
	)

	// TasksTotal counts background tasks by name and status (queued, dropped, succeeded, failed)
	TasksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "social_wallet_tasks_total",
			Help: "Total number of best-effort background tasks",
		},
		[]string{"task", "status"},
	)

	// TaskQueueDepth tracks tasks waiting for a worker
	TaskQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "social_wallet_task_queue_depth",
			Help: "Number of queued background tasks",
		},
	)

	// ErrorsTotal counts unexpected errors by component
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "social_wallet_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)

// Result labels an outcome: "ok" for success, the error kind otherwise.
func Result(kind string, err error) string {
	if err == nil {
		return "ok"
	}
	if kind == "" {
		return "unexpected"
	}
	return kind
}
