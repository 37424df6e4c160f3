package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

func newZapLogger(cfg ZapConfig) *zapLogger {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zapcore.InfoLevel)
	}

	var encCfg zapcore.EncoderConfig
	if cfg.Mode == ModeProduction {
		encCfg = zap.NewProductionEncoderConfig()
	} else {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
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
	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(2)}
	if cfg.Mode != ModeProduction {
		opts = append(opts, zap.Development())
	}

	return &zapLogger{sugar: zap.New(core, opts...).Sugar()}
}

func zapNop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// split separates a leading message from trailing key/value pairs.
// ok is false when the args do not follow that shape.
func split(arg []any) (msg string, kv []any, ok bool) {
	if len(arg) < 3 || len(arg)%2 == 0 {
		return "", nil, false
	}
	msg, ok = arg[0].(string)
	if !ok {
		return "", nil, false
	}
	for i := 1; i < len(arg); i += 2 {
		if _, isKey := arg[i].(string); !isKey {
			return "", nil, false
		}
	}
	return msg, arg[1:], true
}

func (l *zapLogger) log(lvl zapcore.Level, arg []any) {
	if msg, kv, ok := split(arg); ok {
		l.sugar.Logw(lvl, msg, kv...)
		return
	}
	l.sugar.Log(lvl, arg...)
}

func (l *zapLogger) logf(lvl zapcore.Level, template string, arg []any) {
	l.sugar.Logf(lvl, template, arg...)
}

func (l *zapLogger) Debug(ctx context.Context, arg ...any) { l.log(zapcore.DebugLevel, arg) }
func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.logf(zapcore.DebugLevel, template, arg)
}
func (l *zapLogger) Info(ctx context.Context, arg ...any) { l.log(zapcore.InfoLevel, arg) }
func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.logf(zapcore.InfoLevel, template, arg)
}
func (l *zapLogger) Warn(ctx context.Context, arg ...any) { l.log(zapcore.WarnLevel, arg) }
func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.logf(zapcore.WarnLevel, template, arg)
}
func (l *zapLogger) Error(ctx context.Context, arg ...any) { l.log(zapcore.ErrorLevel, arg) }
func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.logf(zapcore.ErrorLevel, template, arg)
}
func (l *zapLogger) DPanic(ctx context.Context, arg ...any) { l.log(zapcore.DPanicLevel, arg) }
func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.logf(zapcore.DPanicLevel, template, arg)
}
func (l *zapLogger) Panic(ctx context.Context, arg ...any) { l.log(zapcore.PanicLevel, arg) }
func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.logf(zapcore.PanicLevel, template, arg)
}
func (l *zapLogger) Fatal(ctx context.Context, arg ...any) { l.log(zapcore.FatalLevel, arg) }
func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.logf(zapcore.FatalLevel, template, arg)
}
