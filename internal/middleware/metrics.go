package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pro-booking/internal/metrics"
)

func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		// rota do gin, não o path cru, para não explodir a cardinalidade
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		m.HTTPRequests.
			WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Inc()
		m.HTTPDuration.
			WithLabelValues(route, c.Request.Method).
			Observe(time.Since(start).Seconds())
	}
}
