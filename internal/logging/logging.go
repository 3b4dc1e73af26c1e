// Package logging builds the file-backed zap logger used by the dashboard.
// The TUI owns the terminal, so log output never goes to stdout or stderr.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production zap logger writing to the given file. Unknown
// level strings fall back to info.
func New(level, file string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{file}
	cfg.ErrorOutputPaths = []string{file}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", file, err)
	}
	return logger, nil
}
