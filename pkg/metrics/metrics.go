package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultOK      = "ok"
	ResultNoop    = "noop"
	ResultError   = "error"
	ResultInvalid = "invalid"
)

var (
	storeOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_store_operations_total",
			Help: "Profile store operations by name and result",
		},
		[]string{"op", "result"},
	)

	persistDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portfolio_store_persist_duration_seconds",
			Help:    "Time spent writing the profile document to slot storage",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2},
		},
		[]string{"driver"},
	)

	documentBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "portfolio_document_bytes",
			Help: "Size of the last persisted profile document",
		},
	)

	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

func ObserveStoreOp(op, result string) {
	storeOperations.WithLabelValues(op, result).Inc()
}

func ObservePersist(driver string, started time.Time, size int) {
	persistDuration.WithLabelValues(driver).Observe(time.Since(started).Seconds())
	documentBytes.Set(float64(size))
}

// GinMiddleware records request count and latency keyed by the matched route
// template, so path parameters do not explode label cardinality.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		httpRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
