package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/deliveryeta/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		panicValue interface{}
		panicType  string
	}{
		{
			name:       "string panic",
			panicValue: "test panic message",
			panicType:  "string",
		},
		{
			name:       "error panic",
			panicValue: errors.New("test error panic"),
			panicType:  "*errors.errorString",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			zl := logger.NewFromZap(zap.New(core), "delivery-service")

			e := echo.New()
			e.Use(RequestIDMiddleware())
			e.Use(PanicRecoveryWithZapMiddleware(zl))
			e.GET("/boom", func(c echo.Context) error {
				panic(tt.panicValue)
			})

			req := httptest.NewRequest(http.MethodGet, "/boom", nil)
			req.Header.Set(echo.HeaderXRequestID, "req-42")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, rec.Body.String())

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, "Panic recovered during request processing", entry.Message)
			ctx := entry.ContextMap()
			assert.Equal(t, tt.panicType, ctx["panic_type"])
			assert.Equal(t, "req-42", ctx["request_id"])
			assert.Equal(t, "/boom", ctx["path"])
			assert.Contains(t, ctx["stack_trace"], "panic_recovery")
		})
	}
}

func TestPanicRecoveryMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() {
		PanicRecoveryMiddleware(PanicRecoveryConfig{})
	})
}

func TestPanicRecoveryMiddleware_PassThrough(t *testing.T) {
	e := echo.New()
	e.Use(PanicRecoveryWithZapMiddleware(logger.NewNopLogger()))
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "fine")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fine", rec.Body.String())
}
