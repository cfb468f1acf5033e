package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON logger in production and a colored console logger
// everywhere else.
func New(isProd bool) *zap.Logger {
	if isProd {
		return zap.Must(zap.NewProduction())
	}

	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zap.Must(config.Build())
}
