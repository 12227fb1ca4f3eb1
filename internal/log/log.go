// Package log provides the logging functionality for papiext.
package log

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLoggerConfig returns a console config writing to stderr, so log lines
// never mix with the descriptor printed on stdout.
func DefaultLoggerConfig() *zap.Config {
	c := zap.NewProductionConfig()
	c.Encoding = "console"
	c.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)
	c.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	c.OutputPaths = []string{"stderr"}
	c.ErrorOutputPaths = []string{"stderr"}
	c.Sampling = nil
	return &c
}

// ParseLevel parses a level name ("debug", "info", "warn", "error").
// An empty name means "warn".
func ParseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		return zapcore.WarnLevel, nil
	}
	lvl, err := zapcore.ParseLevel(name)
	if err != nil {
		return zapcore.WarnLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return lvl, nil
}

// CreateLogger builds a logger at the given level.
func CreateLogger(level string) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	config := DefaultLoggerConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)

	return config.Build()
}
