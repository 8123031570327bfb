package common

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger creates a console logger for the CLI. The benchmark engine
// itself never logs; measurement output goes through the report package.
func NewLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()

	switch level {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn", "warning":
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return nil, fmt.Errorf("invalid log level: %s. must be one of debug, info, warn, error", level)
	}

	// console output without timestamps or callers, the tool is
	// interactive and short-lived
	config.Development = true
	config.Encoding = "console"
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.CallerKey = ""

	return config.Build()
}
