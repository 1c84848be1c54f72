package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/deliveryeta/internal/pkg/requestcontext"
)

// RequestIDKey is the echo context key holding the request ID
const RequestIDKey = "request_id"

// RequestIDMiddleware propagates the caller's X-Request-ID or assigns a new UUID.
// The ID is stored on the echo context and on the request's context.Context.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.Set(RequestIDKey, requestID)
			c.SetRequest(c.Request().WithContext(
				requestcontext.WithRequestID(c.Request().Context(), requestID)))

			return next(c)
		}
	}
}
