// Package logging builds the zap logger shared by the CLI and the TUI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects where and how much to log.
type Options struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string

	// File receives JSON log lines.
	File string

	// Stderr logs to standard error at debug level. Only for commands that
	// do not own the terminal.
	Stderr bool
}

// New builds a logger. The TUI owns the terminal, so without a file and
// without Stderr the logger discards everything.
func New(opts Options) (*zap.Logger, error) {
	if opts.File == "" && !opts.Stderr {
		return zap.NewNop(), nil
	}

	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if opts.Level != "" {
		lvl, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		config.Level = zap.NewAtomicLevelAt(lvl)
	}

	config.OutputPaths = nil
	config.ErrorOutputPaths = nil
	if opts.File != "" {
		config.OutputPaths = append(config.OutputPaths, opts.File)
		config.ErrorOutputPaths = append(config.ErrorOutputPaths, opts.File)
	}
	if opts.Stderr {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		config.Encoding = "console"
		config.OutputPaths = append(config.OutputPaths, "stderr")
		config.ErrorOutputPaths = append(config.ErrorOutputPaths, "stderr")
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.With(zap.String("app", "leadquiz")), nil
}

// Sync flushes the logger, ignoring the errors stderr and pipes return.
func Sync(logger *zap.Logger) {
	if logger != nil {
		_ = logger.Sync()
	}
}
