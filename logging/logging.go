// Package logging builds the zap logger shared by the simulation and hosts
// The terminal host draws on stdout, so logs only ever go to a rolling file
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects the log sink
type Config struct {
	Enabled bool   `toml:"enabled"`
	File    string `toml:"file"`
	Level   string `toml:"level"`
	// MaxSizeMB, MaxBackups and MaxAgeDays drive lumberjack rotation
	MaxSizeMB  int  `toml:"max_size_mb"`
	MaxBackups int  `toml:"max_backups"`
	MaxAgeDays int  `toml:"max_age_days"`
	JSON       bool `toml:"json"`
}

// New returns a file logger, or a no-op logger when logging is disabled
func New(cfg Config) (*zap.Logger, error) {
	if !cfg.Enabled {
		return zap.NewNop(), nil
	}
	if cfg.File == "" {
		return nil, fmt.Errorf("logging enabled without a file")
	}
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	lj := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
	return zap.New(NewCore(zapcore.AddSync(lj), level, cfg.JSON), zap.AddCaller()), nil
}

// NewCore builds the encoder core over any sink, used by New and by tests
func NewCore(ws zapcore.WriteSyncer, level zapcore.Level, json bool) zapcore.Core {
	encCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	encoder := zapcore.NewConsoleEncoder(encCfg)
	if json {
		encoder = zapcore.NewJSONEncoder(encCfg)
	}
	return zapcore.NewCore(encoder, ws, level)
}

// Sync flushes buffered entries, ignoring the error stdout/stderr report on some platforms
func Sync(l *zap.Logger) {
	if l != nil {
		_ = l.Sync()
	}
}
