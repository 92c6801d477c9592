// Package logger provides the shared Zap sugared logger for the application.
// It is initialized once based on environment variables (LOG_LEVEL, ENVIRONMENT).
package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.SugaredLogger
	once   sync.Once
)

// IsTest should be set to true in test binaries so the logger writes
// development output to stdout and skips Sync on Close.
var IsTest bool

func initLoggerInternal() {
	var zapLogger *zap.Logger
	var err error

	levelStr := os.Getenv("LOG_LEVEL")
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = zapcore.InfoLevel
	}

	if IsTest {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		cfg.OutputPaths = []string{"stdout"}
		zapLogger, err = cfg.Build()
	} else if os.Getenv("ENVIRONMENT") == "production" {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		cfg.OutputPaths = []string{"stdout"}
		cfg.ErrorOutputPaths = []string{"stderr"}
		zapLogger, err = cfg.Build()
	} else {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		zapLogger, err = cfg.Build()
	}

	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	logger = zapLogger.Sugar()
}

// InitLogger initializes the global logger. Safe for concurrent callers.
func InitLogger() {
	once.Do(initLoggerInternal)
}

// GetLogger returns the shared zap.SugaredLogger, initializing it if needed.
func GetLogger() *zap.SugaredLogger {
	once.Do(initLoggerInternal)
	return logger
}

// Close flushes buffered log entries. Call before the process exits.
func Close() error {
	if logger != nil && !IsTest {
		if err := logger.Sync(); err != nil {
			fmt.Fprintf(os.Stderr, "Error syncing logger: %v\n", err)
			return err
		}
	}
	return nil
}

// MaskEmail masks the username part of an email address for logging.
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return strings.Repeat("*", len(email))
	}
	username := parts[0]
	if len(username) <= 2 {
		return strings.Repeat("*", len(username)) + "@" + parts[1]
	}
	return username[:2] + "..." + "@" + parts[1]
}
