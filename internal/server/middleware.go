// internal/server/middleware.go
package server

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"stepchain/internal/common/logger"
	"stepchain/internal/common/metrics"
)

// instrument logs every request and records Prometheus counters. Errors are
// rendered here (via c.Error) so the logged status matches what was written.
func instrument(log logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			latency := time.Since(start)
			status := c.Response().Status
			path := c.Path()
			method := c.Request().Method

			metrics.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(latency.Seconds())

			log.Info("request handled", map[string]interface{}{
				"method":    method,
				"path":      path,
				"status":    status,
				"latencyMs": latency.Milliseconds(),
				"requestId": c.Response().Header().Get(echo.HeaderXRequestID),
			})

			return nil
		}
	}
}
