package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the service's prometheus metrics and implements
// ports.MetricsRecorder.
type Collector struct {
	requests    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	lookups     *prometheus.CounterVec
	tasksPurged prometheus.Counter
	resets      prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lx_registry_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lx_registry_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lx_registry_natural_key_lookups_total",
			Help: "Natural-key lookups by entity and outcome.",
		}, []string{"entity", "result"}),
		tasksPurged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lx_registry_periodic_tasks_purged_total",
			Help: "Periodic task rows removed by schedule resets.",
		}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lx_registry_schedule_resets_total",
			Help: "Completed schedule resets.",
		}),
	}

	reg.MustRegister(c.requests, c.latency, c.lookups, c.tasksPurged, c.resets)
	return c
}

func (c *Collector) RecordRequest(method, route string, statusCode int, duration time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	c.latency.WithLabelValues(route).Observe(duration.Seconds())
}

func (c *Collector) RecordLookup(entity string, found bool) {
	result := "miss"
	if found {
		result = "hit"
	}
	c.lookups.WithLabelValues(entity, result).Inc()
}

func (c *Collector) RecordPeriodicTasksPurged(count int64) {
	c.resets.Inc()
	c.tasksPurged.Add(float64(count))
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
