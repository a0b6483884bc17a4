package logger

import (
	"go.uber.org/zap"
)

// Provide builds the CLI logger. Debug switches to the development
// configuration with human readable output.
func Provide(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
