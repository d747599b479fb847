package logging

import (
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"relay-ctrl/config"
	"relay-ctrl/node"
	"relay-ctrl/types"
)

// ParseLevel maps a level name onto a zap level, falling back to warn
func ParseLevel(name string) zapcore.Level {
	switch strings.ToLower(name) {
	case types.LogDebug:
		return zapcore.DebugLevel
	case types.LogInfo:
		return zapcore.InfoLevel
	case types.LogWarn, "warning":
		return zapcore.WarnLevel
	case types.LogError:
		return zapcore.ErrorLevel
	}
	return zapcore.WarnLevel
}

// New builds a console logger writing to w, teed to a rolling file when
// cfg.File is set.
func New(cfg config.LoggingConfig, w io.Writer) *zap.Logger {
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     func(t time.Time, enc zapcore.PrimitiveArrayEncoder) { enc.AppendString(t.Format(time.RFC3339)) },
		EncodeDuration: zapcore.MillisDurationEncoder,
	}

	ws := zapcore.AddSync(w)
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		}
		ws = zapcore.NewMultiWriteSyncer(ws, zapcore.AddSync(lj))
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), ws, ParseLevel(cfg.Level))
	return zap.New(core).With(zap.String("node", node.Name()))
}
