// Package latency provides centralized pause durations for the
// portal's simulated backend calls.
//
// The portal has no real gateway behind it; sign-in and application
// submission sleep for a configured duration so the UI behaves like a
// round trip happened. Durations start at defaults and can be
// overridden at startup with Configure or ConfigureFromEnv. Tests set
// them to zero so nothing actually sleeps.
package latency

import (
	"context"
	"os"
	"sync"
	"time"
)

// Default pause values (used if Configure is not called).
const (
	DefaultLogin  = 1500 * time.Millisecond
	DefaultSubmit = 1 * time.Second
)

// mu protects the pause values from concurrent access.
var mu sync.RWMutex

var (
	login  = DefaultLogin
	submit = DefaultSubmit
)

// Login returns the pause applied to the simulated sign-in call.
func Login() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return login
}

// Submit returns the pause applied to application submission.
func Submit() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return submit
}

// Config holds pause configuration values. Zero values are ignored
// (current values are kept); negative values disable the pause.
type Config struct {
	Login  time.Duration
	Submit time.Duration
}

// Configure sets custom pause values. Call during application startup
// before handlers are registered.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Login != 0 {
		login = max(cfg.Login, 0)
	}
	if cfg.Submit != 0 {
		submit = max(cfg.Submit, 0)
	}
}

// Reset restores the default pauses. Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	login = DefaultLogin
	submit = DefaultSubmit
}

// ConfigureFromEnv reads pause configuration from environment
// variables LATENCY_LOGIN and LATENCY_SUBMIT (Go duration syntax,
// e.g. "1500ms"). It returns how many values were applied.
func ConfigureFromEnv() int {
	mu.Lock()
	defer mu.Unlock()
	configured := 0

	if v := os.Getenv("LATENCY_LOGIN"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			login = d
			configured++
		}
	}
	if v := os.Getenv("LATENCY_SUBMIT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			submit = d
			configured++
		}
	}

	return configured
}

// Sleep pauses for d or until ctx is done, returning ctx.Err() when
// the caller went away mid-pause.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
