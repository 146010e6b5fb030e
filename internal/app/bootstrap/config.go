// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for Bawaba.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: session_key, csrf_key, etc.
//   - Environment variables: BAWABA_SESSION_KEY, BAWABA_CSRF_KEY, etc.
//   - Command-line flags: --session_key, --csrf_key, etc.
var appConfigKeys = []config.AppKey{
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "csrf_key", Default: "dev-only-csrf-key-0123456789ABCD", Desc: "CSRF token key (32 bytes)"},

	// Simulated gateway pauses
	{Name: "latency_login", Default: "1500ms", Desc: "Pause applied to the simulated sign-in call"},
	{Name: "latency_submit", Default: "1s", Desc: "Pause applied to application submission"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles loading from .env files,
// config.yaml/json/toml files, environment variables (WAFFLE_* for
// core, BAWABA_* for app), and command-line flags, merging with
// precedence: flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "BAWABA", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SessionKey:    appValues.String("session_key"),
		SessionDomain: appValues.String("session_domain"),
		CSRFKey:       appValues.String("csrf_key"),
		LatencyLogin:  appValues.Duration("latency_login", 0),
		LatencySubmit: appValues.Duration("latency_submit", 0),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.SessionKey == "" {
		return fmt.Errorf("session_key must not be empty")
	}
	if len(appCfg.CSRFKey) != 32 {
		return fmt.Errorf("csrf_key must be exactly 32 bytes, got %d", len(appCfg.CSRFKey))
	}
	if appCfg.LatencyLogin < 0 || appCfg.LatencySubmit < 0 {
		return fmt.Errorf("latency values must not be negative")
	}
	return nil
}
