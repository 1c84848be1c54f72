package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/deliveryeta/internal/pkg/logger"
	"github.com/piresc/deliveryeta/internal/utils"
)

type PanicRecoveryConfig struct {
	Logger *logger.ZapLogger
}

// PanicRecoveryMiddleware turns a handler panic into a 500 response, a log
// entry with the stack and a New Relic error. http.ErrAbortHandler is
// re-raised.
func PanicRecoveryMiddleware(config PanicRecoveryConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}
	zl := config.Logger

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}
				recoverRequest(c, zl, r, string(debug.Stack()))
				err = nil
			}()
			return next(c)
		}
	}
}

func PanicRecoveryWithZapMiddleware(zl *logger.ZapLogger) echo.MiddlewareFunc {
	return PanicRecoveryMiddleware(PanicRecoveryConfig{Logger: zl})
}

func recoverRequest(c echo.Context, zl *logger.ZapLogger, r interface{}, stack string) {
	req := c.Request()
	requestID := requestIDOf(c)
	panicType := fmt.Sprintf("%T", r)

	txn := newrelic.FromContext(req.Context())
	if txn != nil {
		txn.NoticeError(newrelic.Error{
			Message: fmt.Sprintf("Panic recovered: %v", r),
			Class:   "PanicError",
			Attributes: map[string]interface{}{
				"panic.type":  panicType,
				"http.method": req.Method,
				"http.path":   req.URL.Path,
				"request_id":  requestID,
			},
		})
		txn.AddAttribute("panic.recovered", true)
	}

	zl.WithNewRelicContext(txn).Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", panicType),
		logger.String("stack_trace", stack),
		logger.String("method", req.Method),
		logger.String("path", req.URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("request_id", requestID))

	if !c.Response().Committed {
		_ = utils.InternalServerErrorResponse(c, "Internal server error")
	}
}

// requestIDOf prefers the ID set by RequestIDMiddleware
func requestIDOf(c echo.Context) string {
	if id, ok := c.Get(RequestIDKey).(string); ok && id != "" {
		return id
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}
