// internal/app/features/register/routes.go
package register

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts registration under /auth/register.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ShowForm)
	r.Post("/", h.Submit)
	return r
}
