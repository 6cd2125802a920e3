package logger

import (
	"sales-crm/internal/config"

	"go.uber.org/zap"
)

// NewLogger builds the process-wide zap logger. Production gets the
// JSON encoder, everything else the console encoder.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Environment == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	zapConfig.EncoderConfig.FunctionKey = "func"

	return zapConfig.Build(zap.AddCaller())
}
