// Package logger builds the zap loggers used across ppin.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TimeLayout is the timestamp layout of console log lines.
const TimeLayout = "Jan _2 15:04:05.000000000"

// New returns a development-style console logger at level, with stack
// traces hidden. Callers own the logger and should Sync it before exit.
func New(level zapcore.Level) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(level)

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(TimeLayout)
	encoderConfig.StacktraceKey = "" // to hide stacktrace info
	config.EncoderConfig = encoderConfig

	return config.Build()
}

// NewNamed is New followed by Named(name).
func NewNamed(name string, level zapcore.Level) (*zap.Logger, error) {
	log, err := New(level)
	if err != nil {
		return nil, err
	}

	return log.Named(name), nil
}
