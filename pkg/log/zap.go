package log

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	ModeProduction = "production"
	ModeDebug      = "debug"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// ZapConfig configures the zap backed Logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds a Logger from cfg. Unknown levels fall back to info.
func Init(cfg ZapConfig) Logger {
	level := zap.NewAtomicLevelAt(parseLevel(cfg.Level))

	var encCfg zapcore.EncoderConfig
	if cfg.Mode == ModeProduction {
		encCfg = zap.NewProductionEncoderConfig()
	} else {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding != EncodingJSON {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == EncodingJSON {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)

	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if cfg.Mode != ModeProduction {
		opts = append(opts, zap.Development())
	}

	return &zapLogger{sugar: zap.New(core, opts...).Sugar()}
}

// NewNop returns a Logger that discards everything. Handy in tests.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "dpanic":
		return zapcore.DPanicLevel
	case "panic":
		return zapcore.PanicLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// with attaches request scoped fields carried by ctx.
func (l *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return l.sugar
	}
	if reqID := RequestIDFromContext(ctx); reqID != "" {
		return l.sugar.With("request_id", reqID)
	}
	return l.sugar
}

func (l *zapLogger) Debug(ctx context.Context, arg ...any) { l.with(ctx).Debug(arg...) }
func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Debugf(template, arg...)
}
func (l *zapLogger) Info(ctx context.Context, arg ...any) { l.with(ctx).Info(arg...) }
func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Infof(template, arg...)
}
func (l *zapLogger) Warn(ctx context.Context, arg ...any) { l.with(ctx).Warn(arg...) }
func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Warnf(template, arg...)
}
func (l *zapLogger) Error(ctx context.Context, arg ...any) { l.with(ctx).Error(arg...) }
func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Errorf(template, arg...)
}
func (l *zapLogger) DPanic(ctx context.Context, arg ...any) { l.with(ctx).DPanic(arg...) }
func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).DPanicf(template, arg...)
}
func (l *zapLogger) Panic(ctx context.Context, arg ...any) { l.with(ctx).Panic(arg...) }
func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Panicf(template, arg...)
}
func (l *zapLogger) Fatal(ctx context.Context, arg ...any) { l.with(ctx).Fatal(arg...) }
func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Fatalf(template, arg...)
}
