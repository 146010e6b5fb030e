// internal/app/features/ministries/routes.go
package ministries

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the ministry directory.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/{ministryID}", h.Detail)
	return r
}
