package bootstrap

import (
	"go-shiftplan/internal/config"

	"go.uber.org/zap"
)

// NewLogger returns a JSON production logger in production and a console
// development logger everywhere else.
func NewLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
