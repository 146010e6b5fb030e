// internal/app/features/dashboard/profile.go
package dashboard

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/hzein/bawaba/internal/app/system/auth"
	"github.com/hzein/bawaba/internal/app/system/i18n"
	"github.com/hzein/bawaba/internal/app/system/inputval"
	"github.com/hzein/bawaba/internal/app/system/viewdata"
	"github.com/hzein/bawaba/internal/domain/models"
)

type profileData struct {
	viewdata.BaseVM
	User       models.User
	DOB        string
	Registered string
	Error      string
	Saved      bool
}

// Profile renders the citizen record with an editable contact section.
// GET /dashboard/profile
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	u, ok := h.State.User()
	if !ok {
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		return
	}
	h.renderProfile(w, r, u, "", false)
}

// UpdateProfile saves the editable contact fields. Identity fields
// (names, national ID, date of birth) stay read-only.
// POST /dashboard/profile
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	u, ok := h.State.User()
	if !ok {
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		return
	}
	lang := auth.Lang(r)

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "dashboard.UpdateProfile", err,
			i18n.Text("Could not read the form.", "تعذّرت قراءة النموذج.", lang), "/dashboard/profile")
		return
	}

	phone := strings.TrimSpace(r.PostFormValue("phone"))
	email := strings.TrimSpace(r.PostFormValue("email"))
	street := strings.TrimSpace(r.PostFormValue("street"))
	city := strings.TrimSpace(r.PostFormValue("city"))

	if !inputval.Phone(phone) {
		h.renderProfile(w, r, u, i18n.Text("Please enter a valid Lebanese phone number.", "الرجاء إدخال رقم هاتف لبناني صحيح.", lang), false)
		return
	}
	if !inputval.Email(email) {
		h.renderProfile(w, r, u, i18n.Text("Please enter a valid email address.", "الرجاء إدخال بريد إلكتروني صحيح.", lang), false)
		return
	}

	u.Phone = phone
	u.Email = email
	u.Address.Street = street
	u.Address.City = city
	h.State.SetUser(&u)

	if auth.Store != nil {
		if err := auth.SaveSignIn(w, r, u, lang); err != nil {
			h.Log.Warn("persist profile to session", zap.Error(err))
		}
	}

	h.Log.Info("profile updated", zap.String("user_id", u.ID))
	h.renderProfile(w, r, u, "", true)
}

func (h *Handler) renderProfile(w http.ResponseWriter, r *http.Request, u models.User, errMsg string, saved bool) {
	lang := auth.Lang(r)
	data := profileData{
		BaseVM:     viewdata.NewBaseVM(r, h.State, i18n.Text("My Profile", "ملفي الشخصي", lang), "/dashboard"),
		User:       u,
		DOB:        i18n.FormatDate(u.DateOfBirth, lang),
		Registered: i18n.FormatDate(u.RegistrationDate, lang),
		Error:      errMsg,
		Saved:      saved,
	}
	templates.Render(w, r, "dashboard_profile", data)
}
