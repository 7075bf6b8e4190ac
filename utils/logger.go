package utils

import "go.uber.org/zap"

var logger *zap.Logger

func InitLogger() error {
	l, err := zap.NewProduction()
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// L returns the process logger. Before InitLogger (e.g. in tests) it is a nop
// logger, so library code can log unconditionally.
func L() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}
