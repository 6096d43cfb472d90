package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"perlhq/critic/pkg/config"
)

// Collector owns the metric registry and all critic metrics.
type Collector struct {
	registry *prometheus.Registry

	runsTotal       prometheus.Counter
	filesTotal      prometheus.Counter
	violationsTotal *prometheus.CounterVec
	checkDuration   *prometheus.HistogramVec
}

// NewCollector creates a collector and registers all critic metrics with a
// fresh registry.
func NewCollector(cfg config.MetricsConfig) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),

		runsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "runs_total",
			Help:      "Total number of lint runs completed",
		}),

		filesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "files_checked_total",
			Help:      "Total number of files parsed and checked",
		}),

		violationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "violations_total",
			Help:      "Total number of violations found",
		}, []string{"policy"}),

		checkDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Name:      "policy_check_duration_seconds",
			Help:      "Duration of a policy pass over one document",
			// Checks are pure tree walks and should sit well under a millisecond.
			Buckets: prometheus.ExponentialBuckets(0.000001, 2, 15),
		}, []string{"policy"}),
	}

	c.registry.MustRegister(
		c.runsTotal,
		c.filesTotal,
		c.violationsTotal,
		c.checkDuration,
	)

	return c
}

// RunCompleted records one finished lint run over the given number of files.
func (c *Collector) RunCompleted(files int) {
	c.runsTotal.Inc()
	c.filesTotal.Add(float64(files))
}

// PolicyChecked implements critic.Observer.
func (c *Collector) PolicyChecked(policy string, violations int, duration time.Duration) {
	c.violationsTotal.WithLabelValues(policy).Add(float64(violations))
	c.checkDuration.WithLabelValues(policy).Observe(duration.Seconds())
}
