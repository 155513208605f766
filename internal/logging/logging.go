// Package logging builds the process logger.
package logging

import (
	"fmt"

	"github.com/edaniels/golog"
	"go.uber.org/zap"
)

// NewLogger returns a named development-style logger at the given level.
func NewLogger(name, level string) (golog.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar().Named(name), nil
}
