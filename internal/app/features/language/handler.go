// internal/app/features/language/handler.go
package language

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hzein/bawaba/internal/app/state"
	"github.com/hzein/bawaba/internal/app/system/auth"
	"github.com/hzein/bawaba/internal/domain/models"
)

// Handler switches the portal language. The selection is persisted in
// the cookie and mirrored in the store, then the citizen returns to
// the page they came from.
type Handler struct {
	State *state.Store
	Log   *zap.Logger
}

// NewHandler constructs a language Handler.
func NewHandler(st *state.Store, log *zap.Logger) *Handler {
	return &Handler{State: st, Log: log}
}

// Routes mounts /language/{code}.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/{code}", h.Switch)
	return r
}

// Switch selects the language named in the path. Unknown codes fall
// back to English rather than erroring.
// POST /language/{code}
func (h *Handler) Switch(w http.ResponseWriter, r *http.Request) {
	lang := models.LanguageByCode(chi.URLParam(r, "code"))

	h.State.SetLanguage(lang)
	if err := auth.SaveLanguage(w, r, lang); err != nil {
		h.Log.Error("persist language failed", zap.Error(err))
	}

	ret := r.PostFormValue("return")
	http.Redirect(w, r, urlutil.SafeReturn(ret, "", "/"), http.StatusSeeOther)
}
