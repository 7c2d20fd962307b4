package logger

import (
	"sync"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Defaults: log.txt in the working directory, Info, no console output
	l, err := NewBuilder().Build()
	if err != nil {
		panic(err)
	}
	defaultLogger = l
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Setup reconfigures the default logger; see Logger.Setup
func Setup(cfg Config) error {
	return Default().Setup(cfg)
}

// Log writes msg at level using the default logger
func Log(level Level, msg string) error {
	return Default().Log(level, msg)
}

// Logf writes a formatted message at level using the default logger
func Logf(level Level, format string, args ...interface{}) error {
	return Default().Logf(level, format, args...)
}

// Critical logs a critical message using the default logger
func Critical(msg string) {
	Default().Critical(msg)
}

// Error logs an error message using the default logger
func Error(msg string) {
	Default().Error(msg)
}

// Info logs an info message using the default logger
func Info(msg string) {
	Default().Info(msg)
}

// Warning logs a warning message using the default logger
func Warning(msg string) {
	Default().Warning(msg)
}

// Debug logs a debug message using the default logger
func Debug(msg string) {
	Default().Debug(msg)
}

// Criticalf logs a formatted critical message using the default logger
func Criticalf(format string, args ...interface{}) {
	Default().Criticalf(format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	Default().Errorf(format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	Default().Infof(format, args...)
}

// Warningf logs a formatted warning message using the default logger
func Warningf(format string, args ...interface{}) {
	Default().Warningf(format, args...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	Default().Debugf(format, args...)
}

// WriteError logs err using the default logger
func WriteError(err error) error {
	return Default().WriteError(err)
}

// Fatal logs err using the default logger and exits the program
func Fatal(err error) {
	Default().Fatal(err)
}

// Read returns the default logger's file contents; see Logger.Read
func Read(lineCount int) string {
	return Default().Read(lineCount)
}

// Tail returns the last lineCount lines of the default logger's file
func Tail(lineCount int) ([]string, error) {
	return Default().Tail(lineCount)
}
