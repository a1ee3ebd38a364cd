package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the context-aware logging interface used across the service.
//
//go:generate mockery --name Logger
type Logger interface {
	Debug(ctx context.Context, args ...interface{})
	Debugf(ctx context.Context, format string, args ...interface{})
	Info(ctx context.Context, args ...interface{})
	Infof(ctx context.Context, format string, args ...interface{})
	Warn(ctx context.Context, args ...interface{})
	Warnf(ctx context.Context, format string, args ...interface{})
	Error(ctx context.Context, args ...interface{})
	Errorf(ctx context.Context, format string, args ...interface{})
	DPanic(ctx context.Context, args ...interface{})
	DPanicf(ctx context.Context, format string, args ...interface{})
	Panic(ctx context.Context, args ...interface{})
	Panicf(ctx context.Context, format string, args ...interface{})
	Fatal(ctx context.Context, args ...interface{})
	Fatalf(ctx context.Context, format string, args ...interface{})
}

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the process logger from config. Unknown levels fall back to debug.
func Init(cfg ZapConfig) Logger {
	level := zapcore.DebugLevel
	if l, err := zapcore.ParseLevel(cfg.Level); err == nil {
		level = l
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	if cfg.Mode != "production" {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	}
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding == "console" {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == "json" {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)
	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	return &zapLogger{sugar: logger.Sugar()}
}

func (z *zapLogger) Debug(ctx context.Context, args ...interface{}) { z.sugar.Debug(args...) }
func (z *zapLogger) Debugf(ctx context.Context, format string, args ...interface{}) {
	z.sugar.Debugf(format, args...)
}
func (z *zapLogger) Info(ctx context.Context, args ...interface{}) { z.sugar.Info(args...) }
func (z *zapLogger) Infof(ctx context.Context, format string, args ...interface{}) {
	z.sugar.Infof(format, args...)
}
func (z *zapLogger) Warn(ctx context.Context, args ...interface{}) { z.sugar.Warn(args...) }
func (z *zapLogger) Warnf(ctx context.Context, format string, args ...interface{}) {
	z.sugar.Warnf(format, args...)
}
func (z *zapLogger) Error(ctx context.Context, args ...interface{}) { z.sugar.Error(args...) }
func (z *zapLogger) Errorf(ctx context.Context, format string, args ...interface{}) {
	z.sugar.Errorf(format, args...)
}
func (z *zapLogger) DPanic(ctx context.Context, args ...interface{}) { z.sugar.DPanic(args...) }
func (z *zapLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {
	z.sugar.DPanicf(format, args...)
}
func (z *zapLogger) Panic(ctx context.Context, args ...interface{}) { z.sugar.Panic(args...) }
func (z *zapLogger) Panicf(ctx context.Context, format string, args ...interface{}) {
	z.sugar.Panicf(format, args...)
}
func (z *zapLogger) Fatal(ctx context.Context, args ...interface{}) { z.sugar.Fatal(args...) }
func (z *zapLogger) Fatalf(ctx context.Context, format string, args ...interface{}) {
	z.sugar.Fatalf(format, args...)
}
