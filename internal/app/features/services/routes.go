// internal/app/features/services/routes.go
package services

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the catalog pages. The apply wizard is mounted
// separately under /services/{serviceID}/apply by bootstrap because
// it requires a signed-in citizen.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/{serviceID}", h.Detail)
	return r
}
