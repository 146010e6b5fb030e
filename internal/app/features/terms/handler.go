// internal/app/features/terms/handler.go
package terms

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"

	"github.com/hzein/bawaba/internal/app/state"
	"github.com/hzein/bawaba/internal/app/system/auth"
	"github.com/hzein/bawaba/internal/app/system/i18n"
	"github.com/hzein/bawaba/internal/app/system/viewdata"
)

// Handler renders the terms and conditions page.
type Handler struct {
	State *state.Store
}

// NewHandler constructs a terms Handler.
func NewHandler(st *state.Store) *Handler {
	return &Handler{State: st}
}

// Routes mounts /terms.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Show)
	return r
}

type pageData struct {
	viewdata.BaseVM
}

// Show renders the page.
// GET /terms
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	lang := auth.Lang(r)
	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, h.State, i18n.Text("Terms & Conditions", "الشروط والأحكام", lang), "/"),
	}
	templates.Render(w, r, "terms", data)
}
