package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/KodingMaster1/Molant/internal/metrics"
)

// RequestLogger returns a gin middleware logging one line per request
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 500 {
			event = log.Error()
		} else if statusCode >= 400 {
			event = log.Warn()
		}

		event.
			Int("status", statusCode).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("request_id", c.GetHeader("X-Request-ID")).
			Msg("request processed")
	}
}

// RequestMetrics returns a gin middleware feeding the metrics collector
func RequestMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		name := fmt.Sprintf("http.%s %s", c.Request.Method, route)

		m.IncrementCounter("http.requests_total")
		m.RecordTimer(name, time.Since(start))

		if c.Writer.Status() >= 500 {
			m.RecordError(name)
		} else {
			m.RecordSuccess(name)
		}
	}
}
