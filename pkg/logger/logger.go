package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents the logging level
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

var (
	currentLevel = INFO
	atomicLevel  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	sugar        *zap.SugaredLogger
)

func init() {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	// debug/info/warn 输出到 stdout，error 输出到 stderr
	stdout := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return atomicLevel.Enabled(l) && l < zapcore.ErrorLevel
	})
	stderr := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return atomicLevel.Enabled(l) && l >= zapcore.ErrorLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), stdout),
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), stderr),
	)
	sugar = zap.New(core).Sugar()
}

func toZapLevel(level LogLevel) zapcore.Level {
	switch level {
	case DEBUG:
		return zapcore.DebugLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetLogLevel sets the global log level
func SetLogLevel(level LogLevel) {
	currentLevel = level
	atomicLevel.SetLevel(toZapLevel(level))
}

// SetLogLevelFromString sets the global log level from a string
func SetLogLevelFromString(levelStr string) {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		SetLogLevel(DEBUG)
	case "INFO":
		SetLogLevel(INFO)
	case "WARN":
		SetLogLevel(WARN)
	case "ERROR":
		SetLogLevel(ERROR)
	default:
		SetLogLevel(INFO)
	}
}

// GetLogLevel returns the current log level
func GetLogLevel() LogLevel {
	return currentLevel
}

// Debug logs a debug message if debug level is enabled
func Debug(format string, v ...interface{}) {
	sugar.Debugf(format, v...)
}

// Info logs an info message if info level is enabled
func Info(format string, v ...interface{}) {
	sugar.Infof(format, v...)
}

// Warn logs a warning message if warn level is enabled
func Warn(format string, v ...interface{}) {
	sugar.Warnf(format, v...)
}

// Error logs an error message if error level is enabled
func Error(format string, v ...interface{}) {
	sugar.Errorf(format, v...)
}

// Sync flushes buffered log entries.
func Sync() {
	_ = sugar.Sync()
}
