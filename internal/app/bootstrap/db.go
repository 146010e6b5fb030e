// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/hzein/bawaba/internal/app/fixtures"
	"github.com/hzein/bawaba/internal/app/state"
	"github.com/hzein/bawaba/internal/app/wizard"
)

// ConnectDB builds the portal's backends. The portal is fully
// in-memory, so "connecting" means constructing the state store,
// seeding the service catalog, and creating the draft registry.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	st := state.New()
	st.SetServices(fixtures.Services())
	st.SetMinistries(fixtures.Ministries())

	logger.Info("in-memory store seeded",
		zap.Int("services", len(st.Services())),
		zap.Int("ministries", len(st.Ministries())))

	return Deps{Store: st, Drafts: wizard.NewRegistry()}, nil
}

// EnsureSchema verifies the seeded catalog is internally consistent:
// every service must point at a ministry that exists.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	known := make(map[string]bool)
	for _, m := range deps.Store.Ministries() {
		known[m.ID] = true
	}
	for _, svc := range deps.Store.Services() {
		if !known[svc.MinistryID] {
			return fmt.Errorf("service %s references unknown ministry %s", svc.ID, svc.MinistryID)
		}
	}
	return nil
}
