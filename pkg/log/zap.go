package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // debug | production
	Encoding     string // console | json
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the process-wide Logger from config.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	var zc zap.Config
	if cfg.Mode == "production" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	if cfg.Encoding != "" {
		zc.Encoding = cfg.Encoding
	}
	if cfg.ColorEnabled && zc.Encoding == "console" {
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := zc.Build(zap.AddCallerSkip(1))
	if err != nil {
		// Config-driven build can only fail on a bad encoding name;
		// fall back to the production logger rather than boot without logs.
		l = zap.Must(zap.NewProduction(zap.AddCallerSkip(1)))
	}

	return &zapLogger{sugar: l.Sugar()}
}

func (z *zapLogger) Debug(_ context.Context, args ...any) { z.sugar.Debug(args...) }
func (z *zapLogger) Debugf(_ context.Context, format string, args ...any) {
	z.sugar.Debugf(format, args...)
}
func (z *zapLogger) Info(_ context.Context, args ...any) { z.sugar.Info(args...) }
func (z *zapLogger) Infof(_ context.Context, format string, args ...any) {
	z.sugar.Infof(format, args...)
}
func (z *zapLogger) Warn(_ context.Context, args ...any) { z.sugar.Warn(args...) }
func (z *zapLogger) Warnf(_ context.Context, format string, args ...any) {
	z.sugar.Warnf(format, args...)
}
func (z *zapLogger) Error(_ context.Context, args ...any) { z.sugar.Error(args...) }
func (z *zapLogger) Errorf(_ context.Context, format string, args ...any) {
	z.sugar.Errorf(format, args...)
}
