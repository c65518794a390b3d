// Package logging builds the zap loggers used by the schnorr command.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// New builds a logger for mode ("development" or "production") at the given
// level. Output goes to stderr; when file is non-empty it is also written to
// a size-rotated log file.
func New(mode, level, file string) (*zap.Logger, error) {
	var cfg zap.Config
	if mode != "development" {
		cfg = zap.NewProductionConfig()
		cfg.DisableCaller = true
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.LevelKey = "level"
		cfg.EncoderConfig.MessageKey = "msg"
	}
	if level != "" {
		if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("logging: invalid level %q: %w", level, err)
		}
	}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(getEncoder(cfg), zapcore.Lock(os.Stderr), cfg.Level),
	}
	if file != "" {
		cores = append(cores, zapcore.NewCore(getEncoder(cfg), getWriteSyncer(file), cfg.Level))
	}

	opts := []zap.Option{}
	if !cfg.DisableCaller {
		opts = append(opts, zap.AddCaller())
	}
	return zap.New(zapcore.NewTee(cores...), opts...), nil
}

// Redacted returns a field that records the presence of a secret without
// its value.
func Redacted(key string) zap.Field {
	return zap.String(key, "[REDACTED]")
}

func getEncoder(conf zap.Config) zapcore.Encoder {
	if conf.Encoding == "json" {
		return zapcore.NewJSONEncoder(conf.EncoderConfig)
	}
	return zapcore.NewConsoleEncoder(conf.EncoderConfig)
}

func getWriteSyncer(logName string) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   logName,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
	})
}
