package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/atorres/orderhub/internal/application/mediator"
	"github.com/atorres/orderhub/internal/infrastructure/config"
)

// zapAppLogger adapts a zap.Logger to the application's AppLogger
// capability.
type zapAppLogger struct {
	zapLogger *zap.Logger
}

// NewZapAppLogger builds a zap-backed logger from the logging config.
func NewZapAppLogger(cfg *config.LoggingConfig) (mediator.AppLogger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{cfg.Output}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.DisableCaller = !cfg.IncludeCaller
	if cfg.Format == "text" {
		zapCfg.Encoding = "console"
	}

	zapLogger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return &zapAppLogger{zapLogger: zapLogger}, nil
}

// Log implements mediator.AppLogger. Unknown levels log at info.
func (l *zapAppLogger) Log(level, message string, metadata map[string]interface{}) {
	fields := make([]zap.Field, 0, len(metadata))
	for k, v := range metadata {
		fields = append(fields, zap.Any(k, v))
	}

	switch level {
	case "DEBUG":
		l.zapLogger.Debug(message, fields...)
	case "WARN":
		l.zapLogger.Warn(message, fields...)
	case "ERROR":
		l.zapLogger.Error(message, fields...)
	default:
		l.zapLogger.Info(message, fields...)
	}
}

// Sync flushes buffered log entries, for use on shutdown.
func (l *zapAppLogger) Sync() error {
	return l.zapLogger.Sync()
}
