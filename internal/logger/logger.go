package logger

import (
	"go.uber.org/zap"
)

var global *zap.Logger

// Init builds the process logger. Development mode switches to the console
// encoder with human-readable timestamps.
func Init(isDev bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if isDev {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	global = l
	return nil
}

// L returns the process logger. Falls back to a no-op logger so tests can
// use packages without calling Init.
func L() *zap.Logger {
	if global == nil {
		return zap.NewNop()
	}
	return global
}

func Sync() {
	if global != nil {
		_ = global.Sync()
	}
}
