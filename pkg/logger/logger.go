package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewAppLogger reads APP_ENV directly because it runs before the config is loaded.
func NewAppLogger() (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if env := strings.ToLower(os.Getenv("APP_ENV")); env == "" || env == "local" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return l.Sugar(), nil
}

func Sync(l *zap.SugaredLogger) {
	_ = l.Sync()
}
