package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger: логгер, который используется во всех слоях приложения.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
	With(fields ...zap.Field) Logger
}

// ZapLogger реализует Logger поверх zap.SugaredLogger.
type ZapLogger struct {
	l *zap.Logger
	s *zap.SugaredLogger
}

// NewZapLogger создаёт логгер. В production пишет JSON, иначе цветной консольный вывод.
func NewZapLogger(env string) (*ZapLogger, error) {
	var config zap.Config

	if env == "production" {
		config = zap.NewProductionConfig()
		config.Encoding = "json"
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	l, err := config.Build(
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}

	return FromZap(l), nil
}

// FromZap оборачивает готовый *zap.Logger.
func FromZap(l *zap.Logger) *ZapLogger {
	return &ZapLogger{l: l, s: l.Sugar()}
}

// NewNop возвращает логгер, который ничего не пишет.
func NewNop() *ZapLogger {
	return FromZap(zap.NewNop())
}

func (z *ZapLogger) Debugf(format string, args ...any) {
	z.s.Debugf(format, args...)
}

func (z *ZapLogger) Infof(format string, args ...any) {
	z.s.Infof(format, args...)
}

func (z *ZapLogger) Warnf(format string, args ...any) {
	z.s.Warnf(format, args...)
}

// Errorf пишет сообщение уровня error, добавляя саму ошибку отдельным полем.
func (z *ZapLogger) Errorf(err error, format string, args ...any) {
	z.l.Error(fmt.Sprintf(format, args...), zap.Error(err))
}

func (z *ZapLogger) With(fields ...zap.Field) Logger {
	return FromZap(z.l.With(fields...))
}

// Sync сбрасывает буферы логгера.
func (z *ZapLogger) Sync() error {
	return z.l.Sync()
}
