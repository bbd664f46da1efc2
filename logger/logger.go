// Package logger provides the process wide structured logging surface for
// the module, backed by zap's sugared logger. Libraries in this repo do not
// log; the CLI and test contexts configure logging here.
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the interface consumed by code that only needs to emit logs.
type Logger interface {
	Debugf(template string, args ...any)
	Infof(template string, args ...any)
	Warnf(template string, args ...any)
	Errorf(template string, args ...any)
}

// WrappedLogger carries the configured sugared logger and the service
// annotation helpers.
type WrappedLogger struct {
	*zap.SugaredLogger
}

// Sugar is the process wide logger. It is nil until New has been called.
var Sugar *WrappedLogger

// New configures the process logger at the given level. Level names are
// case insensitive ("DEBUG", "INFO", ...). The special level "NOOP"
// discards everything; tests use it to keep output quiet. Unrecognized
// levels configure INFO.
func New(level string) {
	if strings.EqualFold(level, "NOOP") {
		Sugar = &WrappedLogger{SugaredLogger: zap.NewNop().Sugar()}
		return
	}

	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	log, err := cfg.Build()
	if err != nil {
		Sugar = &WrappedLogger{SugaredLogger: zap.NewNop().Sugar()}
		return
	}
	Sugar = &WrappedLogger{SugaredLogger: log.Sugar()}
}

// WithServiceName returns a logger annotating every entry with the service
// name.
func (w *WrappedLogger) WithServiceName(name string) *WrappedLogger {
	return &WrappedLogger{SugaredLogger: w.With("service", name)}
}

// OnExit flushes buffered output. Defer it from main after calling New.
func OnExit() {
	if Sugar != nil {
		_ = Sugar.Sync()
	}
}
