// Package metrics exposes prometheus instrumentation for the HTTP surface and
// the recurring-batch pipeline.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	batchBookings   *prometheus.CounterVec
}

// New registers the collectors on the default registry.
func New(service string) *Metrics {
	return &Metrics{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: prometheus.Labels{"service": service},
		}, []string{"method", "route", "status"}),
		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: prometheus.Labels{"service": service},
		}, []string{"method", "route"}),
		batchBookings: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "recurring_batch_bookings_total",
			Help:        "Per-date outcomes of recurring batch creation.",
			ConstLabels: prometheus.Labels{"service": service},
		}, []string{"outcome"}),
	}
}

// Middleware records request counts and latency per route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestsTotal.WithLabelValues(
			c.Request.Method, route, strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.requestDuration.WithLabelValues(c.Request.Method, route).
			Observe(time.Since(start).Seconds())
	}
}

// ObserveBatch records the success/failure split of one batch run. Safe to
// call on a nil receiver so services need not guard for disabled metrics.
func (m *Metrics) ObserveBatch(created, failed int) {
	if m == nil {
		return
	}
	m.batchBookings.WithLabelValues("created").Add(float64(created))
	m.batchBookings.WithLabelValues("failed").Add(float64(failed))
}
