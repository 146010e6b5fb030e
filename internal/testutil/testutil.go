// internal/testutil/testutil.go
package testutil

import (
	"testing"

	"github.com/hzein/bawaba/internal/app/fixtures"
	"github.com/hzein/bawaba/internal/app/state"
	"github.com/hzein/bawaba/internal/app/system/auth"
)

// SeededStore returns a state store loaded with the fixture catalog.
func SeededStore(t *testing.T) *state.Store {
	t.Helper()
	st := state.New()
	st.SetServices(fixtures.Services())
	st.SetMinistries(fixtures.Ministries())
	return st
}

// SignedInStore returns a seeded store with the demo citizen logged
// in, plus the matching session user for request contexts.
func SignedInStore(t *testing.T) (*state.Store, *auth.SessionUser) {
	t.Helper()
	st := SeededStore(t)
	u := fixtures.DemoUser()
	st.Login(u)
	return st, &auth.SessionUser{
		ID:         u.ID,
		Name:       u.FirstName + " " + u.LastName,
		NameArabic: u.FirstNameArabic + " " + u.LastNameArabic,
		Email:      u.Email,
	}
}
