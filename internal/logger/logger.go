package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/sirupsen/logrus"
)

const maxLogSize = 10 * 1024 * 1024

var (
	debugLog *os.File
	logPath  string
	log      = newLogger()
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	// The TUI owns stdout/stderr; nothing is written until Init picks a file.
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000000",
	})
	return l
}

// Init initializes the debug logger. An empty dir means ~/.poker-machine.
func Init(dir, level string) error {
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(homeDir, ".poker-machine")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	// Create or append to debug.log
	logPath = filepath.Join(dir, "debug.log")
	debugLog, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	// Rotate if file is too large
	if info, err := debugLog.Stat(); err == nil && info.Size() > maxLogSize {
		_ = debugLog.Close()
		backupPath := filepath.Join(dir, fmt.Sprintf("debug.log.%d", time.Now().Unix()))
		_ = os.Rename(logPath, backupPath)
		debugLog, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to create new log file: %w", err)
		}
	}

	log.SetOutput(debugLog)
	log.SetLevel(lvl)

	LogInfo("Logger initialized, log file: %s", logPath)
	return nil
}

// Close closes the debug log file
func Close() {
	if debugLog != nil {
		log.SetOutput(io.Discard)
		_ = debugLog.Close()
		debugLog = nil
	}
}

// WithFields returns an entry carrying structured fields, e.g. the round id.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return log.WithFields(fields)
}

// LogDebug logs a debug message
func LogDebug(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// LogInfo logs an info message
func LogInfo(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// LogError logs an error message
func LogError(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// LogPanic logs a panic with stack trace
func LogPanic(r interface{}) {
	log.WithField("stack", string(debug.Stack())).Errorf("[PANIC] %v", r)
}

// GetLogPath returns the current log file path
func GetLogPath() string {
	return logPath
}
