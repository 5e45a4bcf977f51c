package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Level  string // debug, info, warn, error
	Format string // console or json
}

var (
	mu sync.Mutex
	lg = zap.NewNop()
)

// Init builds the process logger. It replaces any previous logger.
func Init(cfg Config) error {
	var zc zap.Config
	if cfg.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Sampling = nil

	l, err := zc.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return err
	}
	Set(l)
	return nil
}

// Set installs l as the process logger.
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	lg = l
}

// L returns the process logger; a no-op logger until Init or Set is called.
func L() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return lg
}

func Sync() {
	_ = L().Sync()
}
