// Package metrics exposes workflow counters to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"atelier/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "atelier"

// Collector implements ports.WorkflowMetrics on a private registry, so tests
// can create as many collectors as they like.
type Collector struct {
	registry       *prometheus.Registry
	eventsTotal    *prometheus.CounterVec
	syncsTotal     *prometheus.CounterVec
	resyncDuration prometheus.Histogram
	resyncOrders   prometheus.Gauge
	resyncFailures prometheus.Counter
}

var _ ports.WorkflowMetrics = (*Collector)(nil)

// NewCollector creates and registers all workflow collectors together with
// the Go runtime and process collectors.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		eventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "task_saved_events_total",
				Help:      "TaskSaved events published, by stage",
			},
			[]string{"stage"},
		),
		syncsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "status_syncs_total",
				Help:      "Order status synchronizations, by policy and outcome",
			},
			[]string{"policy", "outcome"},
		),
		resyncDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "resync_duration_seconds",
				Help:      "Duration of periodic resync passes",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
			},
		),
		resyncOrders: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "resync_orders",
				Help:      "Orders visited by the last resync pass",
			},
		),
		resyncFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resync_failures_total",
				Help:      "Orders that failed to resync",
			},
		),
	}

	c.registry.MustRegister(
		c.eventsTotal,
		c.syncsTotal,
		c.resyncDuration,
		c.resyncOrders,
		c.resyncFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

func (c *Collector) EventPublished(stage string) {
	c.eventsTotal.WithLabelValues(stage).Inc()
}

func (c *Collector) SyncFinished(policy string, outcome ports.SyncOutcome) {
	c.syncsTotal.WithLabelValues(policy, string(outcome)).Inc()
}

func (c *Collector) ResyncCompleted(duration time.Duration, orders, failures int) {
	c.resyncDuration.Observe(duration.Seconds())
	c.resyncOrders.Set(float64(orders))
	c.resyncFailures.Add(float64(failures))
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
