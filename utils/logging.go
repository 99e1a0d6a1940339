package utils

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	loggerMu sync.RWMutex
	logger   = zap.NewNop().Sugar()
)

// InitLogger builds the process logger. mode "prod"/"production" selects JSON output.
func InitLogger(mode string) error {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)

	zl, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	SetLogger(zl.Sugar())
	return nil
}

// SetLogger replaces the process logger. Tests use it with zaptest or zap.NewNop.
func SetLogger(l *zap.SugaredLogger) {
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

// SyncLogger flushes buffered log entries.
func SyncLogger() {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	_ = logger.Sync()
}

func current() *zap.SugaredLogger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

func LogInfo(msg string, args ...interface{}) {
	current().Infow(fmt.Sprintf(msg, args...), "tag", "INFO")
}

func LogError(msg string, args ...interface{}) {
	current().Errorw(fmt.Sprintf(msg, args...), "tag", "ERROR")
}

func LogDebug(msg string, args ...interface{}) {
	current().Debugw(fmt.Sprintf(msg, args...), "tag", "DEBUG")
}

// LogFatal logs and exits the process.
func LogFatal(msg string, args ...interface{}) {
	current().Fatalw(fmt.Sprintf(msg, args...), "tag", "FATAL")
}

func LogDB(msg string, args ...interface{}) {
	current().Debugw(fmt.Sprintf(msg, args...), "tag", "DB")
}

func LogHTTP(msg string, args ...interface{}) {
	current().Infow(fmt.Sprintf(msg, args...), "tag", "HTTP")
}

func LogProgress(msg string, args ...interface{}) {
	current().Infow(fmt.Sprintf(msg, args...), "tag", "PROGRESS")
}

func LogStartup(msg string, args ...interface{}) {
	current().Infow(fmt.Sprintf(msg, args...), "tag", "STARTUP")
}

func LogShutdown(msg string, args ...interface{}) {
	current().Infow(fmt.Sprintf(msg, args...), "tag", "SHUTDOWN")
}
