// Package logging configures the process-wide logger for the CLI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New builds a console logger. With debug enabled every scan step is
// logged; otherwise only warnings (misspelled directives) and errors
// surface.
func New(debug bool) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	cfg.Encoding = "console"

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	return logger.Sugar(), nil
}
