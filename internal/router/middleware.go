package router

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cashcard-io/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// URLMiddleware stores the API base URL in the request context so that
// handlers can construct links to other endpoints.
func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(httputil.ContextURL), url.String())
		c.Next()
	}
}

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "cashcard_requests_total",
		Help: "Requests handled by the backend, partitioned by status code, HTTP method and URL.",
	},
	[]string{"code", "method", "url"},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "cashcard_request_duration_seconds",
		Help: "Request latencies in seconds.",
	},
	[]string{"code", "method", "url"},
)

var collectors = []prometheus.Collector{
	requestCount,
	requestDuration,
}

// registerPrometheusMetrics registers all collectors with the default
// registry.
func registerPrometheusMetrics() error {
	for _, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			return fmt.Errorf("could not register Prometheus collector: %w", err)
		}
	}

	return nil
}

// unregisterPrometheusMetrics removes the collectors from the default
// registry again, allowing repeated router setup in tests.
func unregisterPrometheusMetrics() {
	for _, c := range collectors {
		prometheus.Unregister(c)
	}
}

// MetricsMiddleware updates the Prometheus metrics for every handled request.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := float64(time.Since(start)) / float64(time.Second)

		// Record the route with parameter names instead of values, the
		// values would make the label cardinality unbounded
		url := c.Request.URL.Path
		for _, p := range c.Params {
			url = strings.Replace(url, p.Value, fmt.Sprintf(":%s", p.Key), 1)
		}

		requestDuration.WithLabelValues(status, c.Request.Method, url).Observe(elapsed)
		requestCount.WithLabelValues(status, c.Request.Method, url).Inc()
	}
}
