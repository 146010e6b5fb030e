// internal/app/features/login/routes.go
package login

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the sign-in pages under /auth/login.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ShowForm)
	r.Post("/", h.Submit)
	r.Post("/demo", h.Demo)
	return r
}
