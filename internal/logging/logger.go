// Package logging builds the zap loggers used by the pipeline binaries.
package logging

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures New
type Options struct {
	Level       string
	Format      string
	OutputPaths []string // defaults to stderr, stdout is left to command output
	Writer      io.Writer
}

// New creates a logger. Unknown levels fall back to info and unknown formats
// fall back to json. When Writer is set it replaces OutputPaths.
func New(opts Options) (*zap.Logger, error) {
	encoding := "json"
	encoderConfig := zap.NewProductionEncoderConfig()
	if strings.EqualFold(opts.Format, "console") {
		encoding = "console"
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	if opts.Writer != nil {
		encoder := zapcore.NewJSONEncoder(encoderConfig)
		if encoding == "console" {
			encoder = zapcore.NewConsoleEncoder(encoderConfig)
		}
		core := zapcore.NewCore(encoder, zapcore.AddSync(opts.Writer), ParseLevel(opts.Level))
		return zap.New(core), nil
	}

	outputs := opts.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(opts.Level)),
		Development:      false,
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}

// ParseLevel maps a level name to a zap level, defaulting to info
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
