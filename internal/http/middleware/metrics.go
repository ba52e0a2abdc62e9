package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/agrinet/internal/observability"
)

// Metrics instruments HTTP request counts/latency when metrics are enabled.
func Metrics(m *observability.Metrics) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		m.HTTPStarted()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		m.HTTPFinished(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
