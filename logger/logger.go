package logger

import (
	"go.uber.org/zap"
)

// Log is the application logger. It is a no-op until Initialize is called,
// which keeps tests quiet.
var Log *zap.Logger = zap.NewNop()

// Initialize builds a production logger with the given level
func Initialize(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	config := zap.NewProductionConfig()
	config.Level = lvl
	config.Encoding = "console"
	zLogger, err := config.Build()
	if err != nil {
		return err
	}

	Log = zLogger
	return nil
}

// Sync flushes buffered log entries
func Sync() {
	_ = Log.Sync()
}
