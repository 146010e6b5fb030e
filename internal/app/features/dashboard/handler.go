// internal/app/features/dashboard/handler.go
package dashboard

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hzein/bawaba/internal/app/features/errors"
	"github.com/hzein/bawaba/internal/app/state"
)

// Handler serves the signed-in citizen's dashboard pages.
type Handler struct {
	State  *state.Store
	ErrLog *errors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a dashboard Handler.
func NewHandler(st *state.Store, errLog *errors.ErrorLogger, log *zap.Logger) *Handler {
	return &Handler{State: st, ErrLog: errLog, Log: log}
}

// Routes mounts the dashboard. Bootstrap wraps the mount in
// RequireSignedIn.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Overview)
	r.Get("/applications", h.Applications)
	r.Get("/notifications", h.Notifications)
	r.Post("/notifications/{notificationID}/read", h.MarkRead)
	r.Get("/profile", h.Profile)
	r.Post("/profile", h.UpdateProfile)
	return r
}
