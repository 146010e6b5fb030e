// internal/app/features/contact/handler.go
package contact

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hzein/bawaba/internal/app/state"
	"github.com/hzein/bawaba/internal/app/system/auth"
	"github.com/hzein/bawaba/internal/app/system/formutil"
	"github.com/hzein/bawaba/internal/app/system/htmlsanitize"
	"github.com/hzein/bawaba/internal/app/system/i18n"
	"github.com/hzein/bawaba/internal/app/system/inputval"
)

// Handler serves the contact page. Messages are not delivered
// anywhere; they are sanitized, logged, and acknowledged.
type Handler struct {
	State *state.Store
	Log   *zap.Logger
}

// NewHandler constructs a contact Handler.
func NewHandler(st *state.Store, log *zap.Logger) *Handler {
	return &Handler{State: st, Log: log}
}

// Routes mounts /contact.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ShowForm)
	r.Post("/", h.Submit)
	return r
}

type formData struct {
	formutil.Base
	Name    string
	Email   string
	Message string
	Sent    bool
}

// ShowForm renders the contact page.
// GET /contact
func (h *Handler) ShowForm(w http.ResponseWriter, r *http.Request) {
	lang := auth.Lang(r)
	var data formData
	if u, ok := auth.CurrentUser(r); ok {
		data.Name = u.Name
		data.Email = u.Email
	}
	formutil.SetBase(&data.Base, r, h.State, i18n.Text("Contact Us", "اتصل بنا", lang), "/")
	templates.Render(w, r, "contact", data)
}

// Submit validates and acknowledges a message.
// POST /contact
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	lang := auth.Lang(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	data := formData{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		Message: htmlsanitize.Plain(r.PostFormValue("message")),
	}
	formutil.SetBase(&data.Base, r, h.State, i18n.Text("Contact Us", "اتصل بنا", lang), "/")

	switch {
	case data.Name == "":
		data.SetError(i18n.Text("Please enter your name.", "الرجاء إدخال اسمك.", lang))
	case !inputval.Email(data.Email):
		data.SetError(i18n.Text("Please enter a valid email address.", "الرجاء إدخال بريد إلكتروني صالح.", lang))
	case data.Message == "":
		data.SetError(i18n.Text("Please enter a message.", "الرجاء إدخال رسالة.", lang))
	}
	if data.Error != "" {
		templates.Render(w, r, "contact", data)
		return
	}

	h.Log.Info("contact message received",
		zap.String("name", data.Name),
		zap.String("email", data.Email),
		zap.Int("message_len", len(data.Message)))

	data.Sent = true
	data.Message = ""
	templates.Render(w, r, "contact", data)
}
