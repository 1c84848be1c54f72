package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body returned by every failed API call
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Message: message,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, message string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, message)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, message)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, message)
}

// BadGatewayResponse sends a 502 Bad Gateway response
func BadGatewayResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Upstream service error"
	}
	return ErrorResponseHandler(c, http.StatusBadGateway, message)
}

// ServiceUnavailableResponse sends a 503 Service Unavailable response
func ServiceUnavailableResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Service unavailable"
	}
	return ErrorResponseHandler(c, http.StatusServiceUnavailable, message)
}

// JSONErrorHandler replaces echo's default error handler so unmatched
// routes and framework errors use the same body as handler failures.
func JSONErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		_ = InternalServerErrorResponse(c, "")
		return
	}

	msg := ""
	if he.Internal == nil && he.Message != nil {
		msg = fmt.Sprint(he.Message)
	}
	if msg == http.StatusText(he.Code) {
		msg = ""
	}

	switch he.Code {
	case http.StatusNotFound:
		_ = NotFoundResponse(c, msg)
	case http.StatusBadGateway:
		_ = BadGatewayResponse(c, msg)
	case http.StatusServiceUnavailable:
		_ = ServiceUnavailableResponse(c, msg)
	case http.StatusInternalServerError:
		_ = InternalServerErrorResponse(c, msg)
	default:
		if msg == "" {
			msg = http.StatusText(he.Code)
		}
		_ = ErrorResponseHandler(c, he.Code, msg)
	}
}
