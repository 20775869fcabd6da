package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. Records at informational severity and below
// go to stdout, warnings and above to stderr, so CI systems can separate the
// two streams. Debug mode lowers the stdout threshold to debug.
func New(debug bool) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	enc := zapcore.NewConsoleEncoder(encCfg)

	stdoutLevels := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		if l >= zapcore.WarnLevel {
			return false
		}
		if debug {
			return l >= zapcore.DebugLevel
		}
		return l >= zapcore.InfoLevel
	})
	stderrLevels := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= zapcore.WarnLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(enc, zapcore.Lock(os.Stdout), stdoutLevels),
		zapcore.NewCore(enc, zapcore.Lock(os.Stderr), stderrLevels),
	)
	return zap.New(core)
}
