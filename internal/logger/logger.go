// Package logger builds the zap loggers used by the
// command-line tools.
package logger

import (
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogFormat represents the logging format.
type LogFormat string

const (
	// FormatConsole indicates human-readable console format.
	FormatConsole LogFormat = "CONSOLE"
	// FormatJSON indicates structured JSON format.
	FormatJSON LogFormat = "JSON"
)

var initOnce sync.Once

// ParseLevel converts a level name such as "debug" or
// "WARN" to a zapcore.Level. Unknown names map to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ParseFormat converts a format name to a LogFormat,
// falling back to FormatConsole.
func ParseFormat(format string) LogFormat {
	if LogFormat(strings.ToUpper(format)) == FormatJSON {
		return FormatJSON
	}
	return FormatConsole
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05 MST"))
}

// New creates a logger which writes to stderr, so that
// command output on stdout stays machine readable.
func New(level string, format LogFormat) *zap.Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "component",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var encoder zapcore.Encoder
	if format == FormatJSON {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderConfig.EncodeTime = timeEncoder
		encoderConfig.ConsoleSeparator = " | "
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), zap.NewAtomicLevelAt(ParseLevel(level)))
	return zap.New(core)
}

// Initialize replaces the global zap loggers. Values from
// the LOGGING_LEVEL and LOGGING_FORMAT environment
// variables take precedence over the arguments.
//
// Only the first call has any effect.
func Initialize(level, format string) {
	initOnce.Do(func() {
		level = getEnv("LOGGING_LEVEL", level)
		format = getEnv("LOGGING_FORMAT", format)
		zap.ReplaceGlobals(New(level, ParseFormat(format)))
	})
}

// For creates a named logger for a specific component.
func For(component string) *zap.SugaredLogger {
	return zap.S().Named(component)
}

// Sync flushes any buffered log entries.
func Sync() error {
	return zap.L().Sync()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
