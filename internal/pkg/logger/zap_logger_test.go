package logger

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/deliveryeta/internal/pkg/requestcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewFromZap(zap.New(core), "delivery-service"), logs
}

func TestNewZapLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "delivery.log")

	zl, err := NewZapLogger(ZapConfig{Level: "debug", FilePath: path, Service: "delivery-service"}, nil)
	require.NoError(t, err)

	zl.Info("hello", String("k", "v"))
	require.NoError(t, zl.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"k":"v"`)
	assert.Equal(t, path, zl.GetFilePath())
}

func TestNewZapLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	zl, err := NewZapLogger(ZapConfig{Level: "loud"}, nil)
	require.NoError(t, err)
	assert.False(t, zl.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, zl.Core().Enabled(zapcore.InfoLevel))
}

func TestLogHTTPRequest_Levels(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		err      error
		level    zapcore.Level
		expected string
	}{
		{"success", http.StatusOK, nil, zapcore.InfoLevel, "Request processed"},
		{"client error", http.StatusBadRequest, nil, zapcore.WarnLevel, "Client error"},
		{"server error", http.StatusBadGateway, errors.New("boom"), zapcore.ErrorLevel, "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zl, logs := newObservedLogger()
			zl.LogHTTPRequest(nil, http.MethodGet, "/api/location/distance", "127.0.0.1", "req-1", tt.status, 10*time.Millisecond, tt.err)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, tt.expected, entry.Message)
			ctx := entry.ContextMap()
			assert.Equal(t, int64(tt.status), ctx["status"])
			assert.Equal(t, "req-1", ctx["request_id"])
			assert.Equal(t, "delivery-service", ctx["service"])
		})
	}
}

func TestZapEchoMiddleware(t *testing.T) {
	zl, logs := newObservedLogger()

	e := echo.New()
	e.Use(ZapEchoMiddleware(zl))
	e.GET("/ok", func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderXRequestID, "abc")
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "down")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok?x=1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	require.Equal(t, 2, logs.Len())
	first := logs.All()[0].ContextMap()
	assert.Equal(t, "/ok?x=1", first["path"])
	assert.Equal(t, "abc", first["request_id"])

	second := logs.All()[1]
	assert.Equal(t, zapcore.ErrorLevel, second.Level)
	assert.Equal(t, int64(http.StatusServiceUnavailable), second.ContextMap()["status"])
}

func TestGlobalLogger(t *testing.T) {
	zl, logs := newObservedLogger()
	prev := GetGlobalLogger()
	SetGlobalLogger(zl)
	defer SetGlobalLogger(prev)

	Info("info", Int("n", 1))
	Warn("warn", Float64("f", 1.5))
	Error("error", Err(errors.New("x")))
	Debug("debug", Bool("b", true))

	assert.Equal(t, 4, logs.Len())
	assert.Equal(t, "warn", logs.FilterMessage("warn").All()[0].Message)
}

func TestCtxLoggingAddsRequestID(t *testing.T) {
	zl, logs := newObservedLogger()
	prev := GetGlobalLogger()
	SetGlobalLogger(zl)
	defer SetGlobalLogger(prev)

	ctx := requestcontext.WithRequestID(context.Background(), "req-1")
	WarnCtx(ctx, "cache down", Err(errors.New("x")))
	ErrorCtx(context.Background(), "no id")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "req-1", logs.All()[0].ContextMap()["request_id"])
	assert.NotContains(t, logs.All()[1].ContextMap(), "request_id")
}
