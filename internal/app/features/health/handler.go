// internal/app/features/health/handler.go
package health

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hzein/bawaba/internal/app/state"
)

// Handler reports process liveness and seed status. With no database
// behind the portal, "healthy" means the catalog is loaded.
type Handler struct {
	State *state.Store
	Log   *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(st *state.Store, log *zap.Logger) *Handler {
	return &Handler{State: st, Log: log}
}

// Routes mounts /health.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Check)
	return r
}

type status struct {
	Status     string `json:"status"`
	Services   int    `json:"services"`
	Ministries int    `json:"ministries"`
}

// Check reports whether the catalog is seeded.
// GET /health
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	s := status{
		Status:     "ok",
		Services:   len(h.State.Services()),
		Ministries: len(h.State.Ministries()),
	}
	code := http.StatusOK
	if s.Services == 0 || s.Ministries == 0 {
		s.Status = "unseeded"
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(s); err != nil {
		h.Log.Error("encode health response", zap.Error(err))
	}
}
