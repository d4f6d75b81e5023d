package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger keeps printf-style call sites while writing structured zap output.
type Logger struct {
	base  *zap.Logger
	info  *zap.SugaredLogger
	warn  *zap.SugaredLogger
	error *zap.SugaredLogger
}

// New returns a development (console) logger.
func New() *Logger {
	return wrap(zap.Must(zap.NewDevelopment(zap.AddCallerSkip(1))))
}

// NewForEnv returns a JSON logger in production and a console logger otherwise.
func NewForEnv(env, service string) *Logger {
	if env != "production" {
		return New().With("service_name", service)
	}

	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.StacktraceKey = "stacktrace"
	config.EncoderConfig.LevelKey = "severity"
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.CallerKey = "caller"
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	config.Encoding = "json"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	log, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	return wrap(log.With(zap.String("env", env), zap.String("service_name", service)))
}

// NewNop discards everything. Used by tests.
func NewNop() *Logger {
	return wrap(zap.NewNop())
}

func wrap(base *zap.Logger) *Logger {
	sugar := base.Sugar()
	return &Logger{
		base:  base,
		info:  sugar,
		warn:  sugar,
		error: sugar.WithOptions(zap.AddStacktrace(zapcore.FatalLevel)),
	}
}

func (l *Logger) With(key string, value interface{}) *Logger {
	return wrap(l.base.With(zap.Any(key, value)))
}

func (l *Logger) Zap() *zap.Logger {
	return l.base
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.info.Infof(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.warn.Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.error.Errorf(format, args...)
}

func (l *Logger) Sync() {
	_ = l.base.Sync()
}
