package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/deliveryeta/internal/pkg/metrics"
)

// MetricsMiddleware records HTTP request metrics under the matched route pattern
func MetricsMiddleware(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().URL.Path == "/metrics" {
				return next(c)
			}

			m.IncrementHTTPRequestsInFlight()
			defer m.DecrementHTTPRequestsInFlight()

			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}

			m.RecordHTTPRequest(c.Request().Method, path, status, time.Since(start))
			return err
		}
	}
}
