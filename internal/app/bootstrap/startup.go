// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/hzein/bawaba/internal/app/resources"
	"github.com/hzein/bawaba/internal/app/system/latency"
)

// Startup runs one-time application initialization after the store is
// seeded, but before the HTTP handler is built. It loads the shared
// template partials and applies the configured gateway pauses.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	latency.Configure(latency.Config{
		Login:  appCfg.LatencyLogin,
		Submit: appCfg.LatencySubmit,
	})
	if n := latency.ConfigureFromEnv(); n > 0 {
		logger.Info("latency overridden from environment", zap.Int("values", n))
	}

	logger.Info("simulated gateway pauses",
		zap.Duration("login", latency.Login()),
		zap.Duration("submit", latency.Submit()))

	return nil
}
