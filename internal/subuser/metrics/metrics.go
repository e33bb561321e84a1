package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for UpdatesTotal.
const (
	OutcomeCommitted    = "committed"
	OutcomeDaemonFailed = "daemon_failed"
	OutcomeFailed       = "failed"
)

// Metrics provides observability for the subuser module.
// Tracks permission update outcomes, daemon failures and update latency.
type Metrics struct {
	UpdatesTotal   *prometheus.CounterVec
	DaemonFailures *prometheus.CounterVec
	UpdateDuration prometheus.Histogram
}

// New registers the subuser metrics on reg. Pass prometheus.DefaultRegisterer
// in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		UpdatesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "panel_subuser_permission_updates_total",
			Help: "Subuser permission updates by outcome",
		}, []string{"outcome"}),
		DaemonFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "panel_daemon_request_failures_total",
			Help: "Failed daemon calls during subuser updates, by error code",
		}, []string{"code"}),
		UpdateDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "panel_subuser_update_duration_seconds",
			Help:    "Duration of subuser permission updates including the daemon round trip",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// ObserveUpdate records the outcome and duration of one update.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveUpdate(outcome string, start time.Time) {
	m.UpdatesTotal.WithLabelValues(outcome).Inc()
	m.UpdateDuration.Observe(time.Since(start).Seconds())
}

// IncrementDaemonFailure counts a daemon failure by its user-facing code.
func (m *Metrics) IncrementDaemonFailure(code string) {
	m.DaemonFailures.WithLabelValues(code).Inc()
}
