package logs

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EncodingType определяет формат вывода логов.
type EncodingType string

// LevelType определяет уровень логирования.
type LevelType string

const (
	EncodingTypeConsole EncodingType = "console"
	EncodingTypeJSON    EncodingType = "json"
)

const (
	LevelTypeDebug   LevelType = "debug"
	LevelTypeInfo    LevelType = "info"
	LevelTypeWarning LevelType = "warn"
	LevelTypeError   LevelType = "error"
)

// LoggerOptions настройки логгера.
type LoggerOptions struct {
	Level            LevelType      // Уровень логирования
	Encoding         EncodingType   // Формат вывода
	OutputPaths      []string       // Пути вывода логов
	ErrorOutputPaths []string       // Пути вывода ошибок
	InitialFields    map[string]any // Начальные поля для каждой записи
}

// WithLevel задает уровень. Пустая строка оставляет уровень окружения.
func WithLevel(level string) func(*LoggerOptions) {
	return func(o *LoggerOptions) {
		if level != "" {
			o.Level = LevelType(level)
		}
	}
}

// WithFields добавляет поля в каждую запись.
func WithFields(fields map[string]any) func(*LoggerOptions) {
	return func(o *LoggerOptions) {
		o.InitialFields = fields
	}
}

// New создает новый логгер. В окружении GIN_MODE=release по умолчанию json и уровень info,
// иначе консольный вывод и уровень debug.
//
// Параметры:
//   - opts: функции для настройки логгера
//
// Возвращает:
//   - *zap.Logger: настроенный логгер
//   - error: ошибка создания логгера
func New(opts ...func(*LoggerOptions)) (*zap.Logger, error) {
	isProduction := os.Getenv("GIN_MODE") == "release"

	var encoding = EncodingTypeConsole
	var level = LevelTypeDebug
	if isProduction {
		encoding = EncodingTypeJSON
		level = LevelTypeInfo
	}

	options := LoggerOptions{
		Level:            level,
		Encoding:         encoding,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	for _, opt := range opts {
		opt(&options)
	}

	lvl, errLvl := zap.ParseAtomicLevel(string(options.Level))
	if errLvl != nil {
		return nil, fmt.Errorf("parse level: %w", errLvl)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	if options.Encoding == EncodingTypeConsole {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	conf := zap.Config{
		Level:            lvl,
		Development:      !isProduction,
		Encoding:         string(options.Encoding),
		EncoderConfig:    encoderConfig,
		OutputPaths:      options.OutputPaths,
		ErrorOutputPaths: options.ErrorOutputPaths,
		InitialFields:    options.InitialFields,
	}

	log, err := conf.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}

// MustNew создает новый логгер с указанными настройками.
// В случае ошибки вызывает panic.
func MustNew(opts ...func(*LoggerOptions)) *zap.Logger {
	log, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return log
}
