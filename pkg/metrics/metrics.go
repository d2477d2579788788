package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "findit",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "findit",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "findit",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	pushMessages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "findit",
			Subsystem: "notifications",
			Name:      "push_messages_total",
			Help:      "Per-token push results from the FCM gateway.",
		},
		[]string{"result"},
	)

	notificationJobs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "findit",
			Subsystem: "notifications",
			Name:      "jobs_total",
			Help:      "Group fan-out jobs by outcome.",
		},
		[]string{"outcome"},
	)

	tokensPruned = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "findit",
			Subsystem: "notifications",
			Name:      "tokens_deleted_total",
			Help:      "FCM tokens removed from storage.",
		},
		[]string{"reason"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpInFlight,
		httpRequests,
		httpDuration,
		pushMessages,
		notificationJobs,
		tokensPruned,
	)
}

// Handler exposes the registry for scraping.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// GinMiddleware records request counts and latency by route template.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// RecordPush counts per-token push results ("success", "failure", "invalid").
func RecordPush(result string, n int) {
	if n > 0 {
		pushMessages.WithLabelValues(result).Add(float64(n))
	}
}

// RecordNotificationJob counts dispatcher outcomes ("sent", "failed", "dropped").
func RecordNotificationJob(outcome string) {
	notificationJobs.WithLabelValues(outcome).Inc()
}

// RecordTokensDeleted counts token removals ("invalid", "stale").
func RecordTokensDeleted(reason string, n int64) {
	if n > 0 {
		tokensPruned.WithLabelValues(reason).Add(float64(n))
	}
}
