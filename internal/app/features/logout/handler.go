// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hzein/bawaba/internal/app/state"
	"github.com/hzein/bawaba/internal/app/system/auth"
	"github.com/hzein/bawaba/internal/app/wizard"
)

// Handler signs the citizen out. The store drops their applications
// and notifications; the cookie keeps only language and session ID.
type Handler struct {
	State  *state.Store
	Drafts *wizard.Registry
	Log    *zap.Logger
}

// NewHandler constructs a logout Handler.
func NewHandler(st *state.Store, drafts *wizard.Registry, log *zap.Logger) *Handler {
	return &Handler{State: st, Drafts: drafts, Log: log}
}

// Routes mounts /logout.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Logout)
	return r
}

// Logout clears the session.
// GET /logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if u, ok := auth.CurrentUser(r); ok {
		h.Log.Info("citizen signed out", zap.String("user_id", u.ID))
	}

	h.State.Logout()
	if sid := auth.SessionID(r); sid != "" {
		h.Drafts.DeleteSession(sid)
	}
	if err := auth.ClearSession(w, r); err != nil {
		h.Log.Error("clear session failed", zap.Error(err))
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
