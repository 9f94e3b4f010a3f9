package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogrusLogger is Logger backed by sirupsen/logrus.
// Supported log-levels are:
// - trace
// - debug
// - info
// - warn
// - error
// A "prefix" can be specified to help identify logs from specific module.
// Use #NewLogrusLogger to create new instance.
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger creates new instance of LogrusLogger.
// Logging-level can be configured using `LOG_LEVEL`
// env-var. Default level is `info`.
// Logging-level for an individual prefix can be
// specified by setting env-var `<PREFIX>_LOG_LEVEL`.
func NewLogrusLogger(prefix string) *LogrusLogger {
	logLevelStr := os.Getenv(strings.ToUpper(prefix) + "_LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = os.Getenv("LOG_LEVEL")
	}
	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &LogrusLogger{
		entry: log.WithField("module", prefix),
	}
}

// Trace logs trace-level logs.
func (l *LogrusLogger) Trace(s string) {
	l.entry.Trace(s)
}

// Tracef logs trace-level logs after formatting according to a format specifier.
func (l *LogrusLogger) Tracef(s string, v ...interface{}) {
	l.entry.Tracef(s, v...)
}

// Debug logs debug-level logs.
func (l *LogrusLogger) Debug(s string) {
	l.entry.Debug(s)
}

// Debugf logs debug-level logs after formatting according to a format specifier.
func (l *LogrusLogger) Debugf(s string, v ...interface{}) {
	l.entry.Debugf(s, v...)
}

// Info logs info-level logs.
func (l *LogrusLogger) Info(s string) {
	l.entry.Info(s)
}

// Infof logs info-level logs after formatting according to a format specifier.
func (l *LogrusLogger) Infof(s string, v ...interface{}) {
	l.entry.Infof(s, v...)
}

// Warn logs warn-level logs.
func (l *LogrusLogger) Warn(s string) {
	l.entry.Warn(s)
}

// Warnf logs warn-level logs after formatting according to a format specifier.
func (l *LogrusLogger) Warnf(s string, v ...interface{}) {
	l.entry.Warnf(s, v...)
}

// Error logs error-level logs.
func (l *LogrusLogger) Error(s string) {
	l.entry.Error(s)
}

// Errorf logs error-level logs after formatting according to a format specifier.
func (l *LogrusLogger) Errorf(s string, v ...interface{}) {
	l.entry.Errorf(s, v...)
}
