// ABOUTME: Standard logger implementation backed by logrus
// ABOUTME: Provides leveled structured logging for collector components

package standard

import (
	"github.com/sirupsen/logrus"
)

// StandardLogger implements the Logger interface on top of logrus
type StandardLogger struct {
	log *logrus.Logger
}

// NewStandardLogger creates a new logger at info level
func NewStandardLogger() *StandardLogger {
	return NewStandardLoggerWithLevel("info")
}

// NewStandardLoggerWithLevel creates a new logger at the given level.
// Unrecognized levels fall back to info.
func NewStandardLoggerWithLevel(level string) *StandardLogger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	return &StandardLogger{log: log}
}

// Debug logs a debug message
func (l *StandardLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *StandardLogger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *StandardLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *StandardLogger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
