package logger

import (
	"context"
	"sync/atomic"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/deliveryeta/internal/pkg/requestcontext"
	"go.uber.org/zap"
)

var global atomic.Pointer[ZapLogger]

// SetGlobalLogger installs the logger used by the package-level helpers.
// main calls it once the configured logger exists.
func SetGlobalLogger(l *ZapLogger) {
	global.Store(l)
}

// GetGlobalLogger returns the installed logger. Before SetGlobalLogger is
// called it lazily installs a zap production logger.
func GetGlobalLogger() *ZapLogger {
	if l := global.Load(); l != nil {
		return l
	}
	fallback, err := zap.NewProduction()
	if err != nil {
		fallback = zap.NewNop()
	}
	global.CompareAndSwap(nil, NewFromZap(fallback, ""))
	return global.Load()
}

func Debug(msg string, fields ...Field) { GetGlobalLogger().Debug(msg, fields...) }
func Info(msg string, fields ...Field)  { GetGlobalLogger().Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { GetGlobalLogger().Warn(msg, fields...) }
func Error(msg string, fields ...Field) { GetGlobalLogger().Error(msg, fields...) }
func Fatal(msg string, fields ...Field) { GetGlobalLogger().Fatal(msg, fields...) }

// WarnCtx logs with the request ID and New Relic trace found in ctx
func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	fromContext(ctx).Warn(msg, withRequestID(ctx, fields)...)
}

// ErrorCtx logs with the request ID and New Relic trace found in ctx
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	fromContext(ctx).Error(msg, withRequestID(ctx, fields)...)
}

func fromContext(ctx context.Context) *zap.Logger {
	return GetGlobalLogger().WithNewRelicContext(newrelic.FromContext(ctx))
}

func withRequestID(ctx context.Context, fields []Field) []Field {
	if id := requestcontext.GetRequestID(ctx); id != "" {
		return append(fields, String("request_id", id))
	}
	return fields
}
