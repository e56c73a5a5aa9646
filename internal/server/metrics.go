package server

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collectors for the observability listener itself. Registered on the
// default registry alongside the operation metrics, so a single scrape sees
// both.
var (
	registerOnce sync.Once

	activeRequests prometheus.Gauge
	requestsTotal  *prometheus.CounterVec
)

// Metrics bundles the listener's own Prometheus instrumentation with the
// exposition handler.
type Metrics struct {
	handler http.Handler
}

// NewMetrics creates the listener metrics, registering the collectors on
// first use.
func NewMetrics() *Metrics {
	registerOnce.Do(func() {
		activeRequests = promauto.NewGauge(prometheus.GaugeOpts{
			Name: "numcalc_active_requests",
			Help: "Number of HTTP requests currently being served.",
		})
		requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "numcalc_requests_total",
			Help: "Total HTTP requests served, by path.",
		}, []string{"path"})
	})
	return &Metrics{handler: promhttp.Handler()}
}

// IncrementActiveRequests marks a request as in flight.
func (m *Metrics) IncrementActiveRequests() { activeRequests.Inc() }

// DecrementActiveRequests marks a request as finished.
func (m *Metrics) DecrementActiveRequests() { activeRequests.Dec() }

// CountRequest records one served request for the given path.
func (m *Metrics) CountRequest(path string) { requestsTotal.WithLabelValues(path).Inc() }

// WritePrometheus serves the exposition format for all registered collectors,
// including Go runtime metrics.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
