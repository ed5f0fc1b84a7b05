// Package logging builds the zap loggers used by the CLI.
package logging

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// New returns a zap logger. When debug is true it uses the development config
// (human-readable, debug level); otherwise production JSON at warn level so a
// normal run prints nothing but its result line. Both write to stderr.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// WithRun tags every entry of logger with a fresh run_id.
func WithRun(logger *zap.Logger) *zap.Logger {
	return logger.With(zap.String("run_id", uuid.NewString()))
}
