// Package logging configures the diagnostic logger for the CLI. Output goes to
// stderr and is silent unless verbose mode is enabled, keeping stdout free for
// query results.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

// Init builds the process logger. With verbose enabled, debug-level output is
// written to stderr in the development console format.
func Init(verbose bool) error {
	if !verbose {
		logger = zap.NewNop()
		return nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.DisableStacktrace = true

	built, err := cfg.Build()
	if err != nil {
		return err
	}
	logger = built
	return nil
}

// L returns the process logger.
func L() *zap.Logger {
	return logger
}

// Sync flushes buffered log entries. Safe to call on the no-op logger.
func Sync() {
	_ = logger.Sync()
}
