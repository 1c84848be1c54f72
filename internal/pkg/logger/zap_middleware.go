package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// ZapEchoMiddleware writes one access-log line per request. Handler errors
// are rendered through echo's error handler first so the logged status is
// the one the client saw.
func ZapEchoMiddleware(zl *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			elapsed := time.Since(start)
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			target := req.URL.Path
			if req.URL.RawQuery != "" {
				target += "?" + req.URL.RawQuery
			}

			// nil unless nrecho runs upstream
			txn := newrelic.FromContext(req.Context())
			if txn != nil {
				txn.AddAttribute("request_id", requestID)
				txn.AddAttribute("response_time_ms", elapsed.Milliseconds())
			}

			zl.LogHTTPRequest(txn, req.Method, target, c.RealIP(), requestID, c.Response().Status, elapsed, err)
			return nil
		}
	}
}
