package middlewares

import (
	"strconv"
	"time"

	"github.com/catspotter/cat-tracker/infrastructure/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records the request counter and latency histogram
// registered by the container. Unmatched routes share one label value so
// scanners cannot blow up the cardinality.
func MetricsMiddleware(m metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		ctx := c.Request.Context()
		m.IncrementCounter(ctx, "http_requests_total",
			"method", c.Request.Method,
			"path", route,
			"status", strconv.Itoa(c.Writer.Status()),
		)
		m.RecordHistogram(ctx, "http_request_duration_seconds", time.Since(start).Seconds(),
			"method", c.Request.Method,
			"path", route,
		)
	}
}
