// Package logging builds the process-wide zap logger.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugEnv switches the logger to debug level when set to anything but "" or "0".
const DebugEnv = "WAITLIST_DEBUG"

// Debug reports whether DebugEnv is switched on.
func Debug() bool {
	v := os.Getenv(DebugEnv)
	return v != "" && v != "0"
}

func New() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if Debug() {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
