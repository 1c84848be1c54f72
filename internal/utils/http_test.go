package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestErrorResponseHandler(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
	}{
		{
			name:       "Bad request",
			statusCode: http.StatusBadRequest,
			message:    "Missing coordinates",
		},
		{
			name:       "Empty message",
			statusCode: http.StatusNotFound,
			message:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := ErrorResponseHandler(c, tt.statusCode, tt.message)
			assert.NoError(t, err)
			assert.Equal(t, tt.statusCode, rec.Code)

			var response ErrorResponse
			err = json.Unmarshal(rec.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.False(t, response.Success)
			assert.Equal(t, tt.message, response.Message)
		})
	}
}

func TestDefaultMessages(t *testing.T) {
	tests := []struct {
		name       string
		respond    func(echo.Context, string) error
		statusCode int
		expected   string
	}{
		{"not found", NotFoundResponse, http.StatusNotFound, "Resource not found"},
		{"internal", InternalServerErrorResponse, http.StatusInternalServerError, "Internal server error"},
		{"bad gateway", BadGatewayResponse, http.StatusBadGateway, "Upstream service error"},
		{"unavailable", ServiceUnavailableResponse, http.StatusServiceUnavailable, "Service unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			assert.NoError(t, tt.respond(c, ""))
			assert.Equal(t, tt.statusCode, rec.Code)

			var response ErrorResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, tt.expected, response.Message)
		})
	}
}

func TestBadRequestResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, BadRequestResponse(c, "Invalid coordinates"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Invalid coordinates"}`, rec.Body.String())
}

func TestJSONErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		statusCode int
		expected   string
	}{
		{"unknown route", echo.ErrNotFound, http.StatusNotFound, "Resource not found"},
		{"custom message", echo.NewHTTPError(http.StatusServiceUnavailable, "maps down"), http.StatusServiceUnavailable, "maps down"},
		{"method not allowed", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "Method Not Allowed"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			JSONErrorHandler(tt.err, c)

			assert.Equal(t, tt.statusCode, rec.Code)
			var response ErrorResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, tt.expected, response.Message)
		})
	}
}
