// Package metrics registers process counters for the distribution flow and
// exposes them via the standard promhttp handler.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/ports"
)

var distributionsAttemptedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "distributions_attempted_total",
		Help: "Total number of distribution triggers received",
	},
	[]string{"tenant"},
)

var recipientsNotifiedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "recipients_notified_total",
		Help: "Total number of recipients notified across distributions",
	},
	[]string{"tenant"},
)

var distributionsFailedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "distributions_failed_total",
		Help: "Total number of distributions that failed to persist",
	},
	[]string{"tenant"},
)

func Init() {
	prometheus.MustRegister(distributionsAttemptedTotal)
	prometheus.MustRegister(recipientsNotifiedTotal)
	prometheus.MustRegister(distributionsFailedTotal)
}

func Handler() http.Handler {
	return promhttp.Handler()
}

// Recorder adapts the registered counters to the distribution module's
// metrics port.
type Recorder struct{}

func (Recorder) DistributionAttempted(tenantID string) {
	distributionsAttemptedTotal.WithLabelValues(tenantID).Inc()
}

func (Recorder) RecipientsNotified(tenantID string, count int) {
	recipientsNotifiedTotal.WithLabelValues(tenantID).Add(float64(count))
}

func (Recorder) DistributionFailed(tenantID string) {
	distributionsFailedTotal.WithLabelValues(tenantID).Inc()
}

var _ ports.Metrics = Recorder{}
