package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// VerboseChecker interface for checking verbose state
type VerboseChecker interface {
	IsVerbose() bool
}

// Logger provides structured logging with verbose support
type Logger struct {
	component      string
	verboseChecker VerboseChecker
	writer         io.Writer
}

// Field represents a key-value pair for structured logging
type Field struct {
	Key   string
	Value interface{}
}

// New creates a new logger instance
func New(component string, verboseChecker VerboseChecker) *Logger {
	return &Logger{
		component:      component,
		verboseChecker: verboseChecker,
		writer:         os.Stderr,
	}
}

// WithComponent creates a logger with a specific component name
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		component:      component,
		verboseChecker: l.verboseChecker,
		writer:         l.writer,
	}
}

// callbackChecker implements VerboseChecker with a callback function
type callbackChecker struct {
	callback func() bool
}

func (c *callbackChecker) IsVerbose() bool {
	if c.callback == nil {
		return false
	}
	return c.callback()
}

// Debug logs debug messages (only when verbose=true)
func (l *Logger) Debug(msg string, fields ...Field) {
	if l.verboseChecker != nil && l.verboseChecker.IsVerbose() {
		l.log("DEBUG", msg, fields)
	}
}

// Info logs informational messages (only when verbose=true)
func (l *Logger) Info(msg string, fields ...Field) {
	if l.verboseChecker != nil && l.verboseChecker.IsVerbose() {
		l.log("INFO", msg, fields)
	}
}

// Warn logs warning messages (always shown)
func (l *Logger) Warn(msg string, fields ...Field) {
	l.log("WARN", msg, fields)
}

// Error logs error messages (always shown)
func (l *Logger) Error(msg string, fields ...Field) {
	l.log("ERROR", msg, fields)
}

// log formats and writes log message
func (l *Logger) log(level, msg string, fields []Field) {
	timestamp := time.Now().Format("15:04:05.000")
	component := l.component
	if component == "" {
		component = "main"
	}

	var fieldsStr string
	if len(fields) > 0 {
		fieldStrings := make([]string, 0, len(fields))
		for _, field := range fields {
			fieldStrings = append(fieldStrings, fmt.Sprintf("%s=%v", field.Key, field.Value))
		}
		fieldsStr = " " + strings.Join(fieldStrings, " ")
	}

	logLine := fmt.Sprintf("[%s] %s [%s] %s%s\n", timestamp, level, component, msg, fieldsStr)

	if _, err := fmt.Fprint(l.writer, logLine); err != nil {
		// Log write failed, but we can't do much about it
		// since this is the logger itself
		_ = err
	}
}

// Helper functions for common field types
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

func Duration(d time.Duration) Field {
	return Field{Key: "duration", Value: d}
}

func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// Package-level default logger, wired to the CLI verbose flag at startup

var defaultLogger = &Logger{writer: os.Stderr}

// SetVerboseChecker sets the verbose callback on the default logger
func SetVerboseChecker(callback func() bool) {
	defaultLogger.verboseChecker = &callbackChecker{callback: callback}
}

// Default returns the package-level logger for the given component
func Default(component string) *Logger {
	return defaultLogger.WithComponent(component)
}
