// internal/app/bootstrap/deps.go
package bootstrap

import (
	"github.com/hzein/bawaba/internal/app/state"
	"github.com/hzein/bawaba/internal/app/wizard"
)

// Deps holds the portal's backend dependencies. There is no real
// database behind the portal; the in-memory store and the wizard draft
// registry fill that role.
type Deps struct {
	Store  *state.Store
	Drafts *wizard.Registry
}
