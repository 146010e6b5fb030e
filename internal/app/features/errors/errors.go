// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/hzein/bawaba/internal/app/state"
	"github.com/hzein/bawaba/internal/app/system/i18n"
	"github.com/hzein/bawaba/internal/app/system/viewdata"
)

// pageData is the view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
}

// Handler is the errors feature handler.
// No store access beyond the unread badge; it just renders templates.
type Handler struct {
	State *state.Store
}

// NewHandler constructs an errors Handler.
func NewHandler(st *state.Store) *Handler {
	return &Handler{State: st}
}

// NotFound renders a friendly "page not found" page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	lang := langOf(r)
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, h.State, i18n.Text("Page not found", "الصفحة غير موجودة", lang), "/"),
		Message: i18n.Text("The page you are looking for does not exist.", "الصفحة التي تبحث عنها غير موجودة.", lang),
	}
	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_page", data)
}

// Forbidden renders a friendly "access denied" page.
// GET /forbidden
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	lang := langOf(r)
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, h.State, i18n.Text("Access denied", "الوصول مرفوض", lang), "/"),
		Message: i18n.Text("You don't have permission to view this page.", "ليس لديك صلاحية لعرض هذه الصفحة.", lang),
	}
	w.WriteHeader(http.StatusForbidden)
	templates.Render(w, r, "error_page", data)
}
