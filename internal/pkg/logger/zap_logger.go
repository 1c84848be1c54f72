package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/deliveryeta/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is the service logger. It writes JSON to stdout, optionally to
// a file, and forwards to New Relic when an application is given.
type ZapLogger struct {
	*zap.Logger
	service  string
	filePath string
	file     *os.File
}

type ZapConfig struct {
	Level    string
	FilePath string
	Service  string
}

var jsonEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "timestamp",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "message",
	StacktraceKey:  "stacktrace",
	LineEnding:     zapcore.DefaultLineEnding,
	EncodeLevel:    zapcore.LowercaseLevelEncoder,
	EncodeTime:     zapcore.RFC3339TimeEncoder,
	EncodeDuration: zapcore.StringDurationEncoder,
	EncodeCaller:   zapcore.ShortCallerEncoder,
}

// parseLevel falls back to info for unknown names
func parseLevel(name string) zapcore.Level {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

func NewZapLogger(cfg ZapConfig, nrApp *newrelic.Application) (*ZapLogger, error) {
	level := parseLevel(cfg.Level)
	enc := zapcore.NewJSONEncoder(jsonEncoderConfig)
	zl := &ZapLogger{service: cfg.Service, filePath: cfg.FilePath}

	cores := []zapcore.Core{zapcore.NewCore(enc, zapcore.Lock(os.Stdout), level)}
	if cfg.FilePath != "" {
		f, err := openLogFile(cfg.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
		zl.file = f
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(f), level))
	}
	if nrApp != nil {
		cores = append(cores, &nrCore{LevelEnabler: level, app: nrApp, service: cfg.Service})
	}

	zl.Logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	return zl, nil
}

func InitZapLoggerFromConfig(configs *models.Config, nrApp *newrelic.Application) (*ZapLogger, error) {
	return NewZapLogger(ZapConfig{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
		Service:  configs.App.Name,
	}, nrApp)
}

// NewFromZap wraps an existing zap logger, e.g. an observer in tests
func NewFromZap(l *zap.Logger, service string) *ZapLogger {
	return &ZapLogger{Logger: l, service: service}
}

func NewNopLogger() *ZapLogger {
	return NewFromZap(zap.NewNop(), "")
}

func (zl *ZapLogger) GetFilePath() string {
	return zl.filePath
}

// Close flushes buffered entries and closes the log file, if any
func (zl *ZapLogger) Close() error {
	_ = zl.Sync()
	if zl.file == nil {
		return nil
	}
	return zl.file.Close()
}

// WithNewRelicContext tags entries with the trace and span of txn
func (zl *ZapLogger) WithNewRelicContext(txn *newrelic.Transaction) *zap.Logger {
	if txn == nil {
		return zl.Logger
	}
	md := txn.GetLinkingMetadata()
	if md.TraceID == "" {
		return zl.Logger
	}
	return zl.With(zap.String("trace.id", md.TraceID), zap.String("span.id", md.SpanID))
}

// LogHTTPRequest writes the access-log line for one request. 5xx logs at
// error level, 4xx at warn.
func (zl *ZapLogger) LogHTTPRequest(txn *newrelic.Transaction, method, path, clientIP, requestID string, status int, latency time.Duration, err error) {
	fields := []zap.Field{
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.Duration("latency", latency),
		zap.Int64("latency_ms", latency.Milliseconds()),
		zap.String("client_ip", clientIP),
		zap.String("request_id", requestID),
	}
	if zl.service != "" {
		fields = append(fields, zap.String("service", zl.service))
	}

	l := zl.WithNewRelicContext(txn)
	switch {
	case status >= 500:
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		l.Error("Server error", fields...)
	case status >= 400:
		l.Warn("Client error", fields...)
	default:
		l.Info("Request processed", fields...)
	}
}
