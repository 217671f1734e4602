package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewJSON builds a production JSON logger. Unknown levels fall back to info.
func NewJSON(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func ParseLevel(lvl string) zapcore.Level {
	l, err := zapcore.ParseLevel(lvl)
	if err != nil || l > zapcore.ErrorLevel {
		return zapcore.InfoLevel
	}
	return l
}
