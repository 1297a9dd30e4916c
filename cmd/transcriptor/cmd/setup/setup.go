// Package setup loads the configuration and logger shared by every command.
package setup

import (
	"go.uber.org/zap"

	"github.com/JesusPQ15/Transcription-page/internal/config"
	"github.com/JesusPQ15/Transcription-page/internal/logging"
)

var (
	// ConfigPath is bound to the persistent --config flag
	ConfigPath string
	// Verbose is bound to the persistent --verbose flag
	Verbose bool
)

// Load reads .env and the config file, then builds a logger. Verbose or a
// development environment selects the development logger.
func Load() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Initialize(ConfigPath)
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.NewLogger(Verbose || !cfg.IsProduction())
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
