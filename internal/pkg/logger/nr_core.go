package logger

import (
	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap/zapcore"
)

// nrCore forwards entries to New Relic log management
type nrCore struct {
	zapcore.LevelEnabler
	app     *newrelic.Application
	service string
	fields  []zapcore.Field
}

func (c *nrCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	return &nrCore{
		LevelEnabler: c.LevelEnabler,
		app:          c.app,
		service:      c.service,
		fields:       append(merged, fields...),
	}
}

func (c *nrCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(entry.Level) {
		return ce
	}
	return ce.AddCore(entry, c)
}

func (c *nrCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range append(c.fields, fields...) {
		f.AddTo(enc)
	}
	enc.Fields["service"] = c.service
	enc.Fields["caller"] = entry.Caller.TrimmedPath()
	if entry.Stack != "" {
		enc.Fields["stacktrace"] = entry.Stack
	}

	c.app.RecordLog(newrelic.LogData{
		Timestamp:  entry.Time.UnixMilli(),
		Message:    entry.Message,
		Severity:   entry.Level.String(),
		Attributes: enc.Fields,
	})
	return nil
}

func (c *nrCore) Sync() error { return nil }
