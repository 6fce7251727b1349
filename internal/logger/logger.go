package logger

import (
	"go.uber.org/zap"
)

// New builds the process logger. Development mode gets the console encoder
// with stacktraces limited to errors; everything else gets production JSON.
func New(ginMode string) (*zap.Logger, error) {
	if ginMode == "release" {
		return zap.NewProduction()
	}
	c := zap.NewDevelopmentConfig()
	return c.Build(zap.AddStacktrace(zap.ErrorLevel))
}
