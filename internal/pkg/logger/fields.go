package logger

import "go.uber.org/zap"

// Field is re-exported so callers log through this package without importing zap
type Field = zap.Field

// Field constructors
var (
	String   = zap.String
	Int      = zap.Int
	Float64  = zap.Float64
	Bool     = zap.Bool
	Any      = zap.Any
	Duration = zap.Duration
	Err      = zap.Error
)
