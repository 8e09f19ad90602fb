package retry

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is a Notifier that records retries in Prometheus.
type Metrics struct {
	attempts  *prometheus.CounterVec
	backoff   *prometheus.HistogramVec
	exhausted *prometheus.CounterVec
}

// NewMetrics registers the retry collectors on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		attempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "retry_attempts_total",
				Help: "Total number of retries scheduled after a failed attempt",
			},
			[]string{"operation"},
		),
		backoff: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "retry_backoff_seconds",
				Help:    "Delay taken before each retry",
				Buckets: []float64{.1, .25, .5, 1, 2, 4, 8, 10, 30},
			},
			[]string{"operation"},
		),
		exhausted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "retry_exhausted_total",
				Help: "Total number of calls that spent their whole retry budget",
			},
			[]string{"operation"},
		),
	}

	for _, c := range []prometheus.Collector{m.attempts, m.backoff, m.exhausted} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) Retrying(_ context.Context, ev Event) {
	m.attempts.WithLabelValues(ev.Operation).Inc()
	m.backoff.WithLabelValues(ev.Operation).Observe(ev.Delay.Seconds())
}

func (m *Metrics) Exhausted(_ context.Context, ev Event) {
	m.exhausted.WithLabelValues(ev.Operation).Inc()
}
