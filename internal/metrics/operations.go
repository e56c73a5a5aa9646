package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus collectors for operation execution. Registered once on the
// default registry; the metrics server exposes them when enabled.
var (
	// OperationsTotal counts completed operations by slug and outcome.
	OperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "numcalc_operations_total",
		Help: "Total number of numeric operations executed, by operation and status.",
	}, []string{"operation", "status"})

	// OperationDuration observes wall-clock execution time per operation.
	OperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "numcalc_operation_duration_seconds",
		Help:    "Wall-clock duration of numeric operations.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"operation"})
)

// ObserveOperation records the outcome of a single operation run.
func ObserveOperation(operation string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	OperationsTotal.WithLabelValues(operation, status).Inc()
	OperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
