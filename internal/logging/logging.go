// Package logging оборачивает zap: консоль в stderr (stdout занят эхом предложений)
// и, опционально, JSON-файл с ротацией через lumberjack.
package logging

import (
	"os"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger - обёртка над zap с полями в виде map, как в остальном коде
type Logger struct {
	*zap.Logger
}

// Options задаёт уровень и файл для логов
type Options struct {
	Level string
	File  string
}

// New создаёт logger по опциям. Неизвестный уровень - ошибка.
func New(opts Options) (*Logger, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, err
		}
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), level),
	}

	if opts.File != "" {
		fileLogger := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		}
		jsonCfg := zap.NewProductionEncoderConfig()
		jsonCfg.TimeKey = "timestamp"
		jsonCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(jsonCfg), zapcore.AddSync(fileLogger), level))
	}

	return &Logger{Logger: zap.New(zapcore.NewTee(cores...))}, nil
}

// NewNop - logger, который ничего не пишет (для тестов и библиотечного кода)
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	l.log(zapcore.DebugLevel, msg, fields...)
}

func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	l.log(zapcore.InfoLevel, msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	l.log(zapcore.WarnLevel, msg, fields...)
}

// Error добавляет текст ошибки в поле "error"
func (l *Logger) Error(msg string, err error, fields ...map[string]interface{}) {
	all := mergeFields(fields...)
	if err != nil {
		all["error"] = err.Error()
	}
	l.log(zapcore.ErrorLevel, msg, all)
}

func (l *Logger) log(level zapcore.Level, msg string, fields ...map[string]interface{}) {
	all := mergeFields(fields...)
	zapFields := make([]zap.Field, 0, len(all))
	for k, v := range all {
		zapFields = append(zapFields, zap.Any(k, v))
	}

	if ce := l.Logger.Check(level, msg); ce != nil {
		ce.Write(zapFields...)
	}
}

func mergeFields(fields ...map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{})
	for _, m := range fields {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}
