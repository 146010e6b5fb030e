// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown tears down backend resources. Everything lives in process
// memory, so there is nothing to disconnect; the final store revision
// is logged for post-mortem correlation.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	if deps.Store != nil {
		logger.Info("shutting down", zap.Uint64("store_revision", deps.Store.Revision()))
	}
	return nil
}
