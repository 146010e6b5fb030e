// internal/app/features/register/handler.go
package register

import (
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/hzein/bawaba/internal/app/state"
	"github.com/hzein/bawaba/internal/app/system/auth"
	"github.com/hzein/bawaba/internal/app/system/formutil"
	"github.com/hzein/bawaba/internal/app/system/i18n"
	"github.com/hzein/bawaba/internal/app/system/inputval"
	"github.com/hzein/bawaba/internal/domain/models"
)

// minAge is the minimum age for a citizen account.
const minAge = 18

/*───────────────────────────── handler ─────────────────────────────*/

// Handler serves citizen registration. Accounts live only in the
// in-memory store; registering mainly exercises the full validation
// path and gives sign-in a password to verify.
type Handler struct {
	State *state.Store
	Log   *zap.Logger
}

// NewHandler constructs a register Handler.
func NewHandler(st *state.Store, log *zap.Logger) *Handler {
	return &Handler{State: st, Log: log}
}

type formData struct {
	formutil.Base
	FirstName       string
	LastName        string
	FirstNameArabic string
	LastNameArabic  string
	Email           string
	Phone           string
	NationalID      string
	DateOfBirth     string
	Gender          string
}

/*───────────────────────────── pages ───────────────────────────────*/

// ShowForm renders the registration page.
// GET /auth/register
func (h *Handler) ShowForm(w http.ResponseWriter, r *http.Request) {
	lang := auth.Lang(r)
	var data formData
	formutil.SetBase(&data.Base, r, h.State, i18n.Text("Register", "إنشاء حساب", lang), "/auth/login")
	templates.Render(w, r, "register", data)
}

// Submit validates the registration form, stores the account, and
// signs the new citizen in.
// POST /auth/register
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	lang := auth.Lang(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	data := formData{
		FirstName:       strings.TrimSpace(r.PostFormValue("first_name")),
		LastName:        strings.TrimSpace(r.PostFormValue("last_name")),
		FirstNameArabic: strings.TrimSpace(r.PostFormValue("first_name_arabic")),
		LastNameArabic:  strings.TrimSpace(r.PostFormValue("last_name_arabic")),
		Email:           strings.TrimSpace(r.PostFormValue("email")),
		Phone:           strings.TrimSpace(r.PostFormValue("phone")),
		NationalID:      strings.TrimSpace(r.PostFormValue("national_id")),
		DateOfBirth:     r.PostFormValue("date_of_birth"),
		Gender:          r.PostFormValue("gender"),
	}
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("password_confirm")
	agreed := r.PostFormValue("terms") == "on"

	renderError := func(msg string) {
		formutil.SetBase(&data.Base, r, h.State, i18n.Text("Register", "إنشاء حساب", lang), "/auth/login")
		data.SetError(msg)
		templates.Render(w, r, "register", data)
	}

	if data.FirstName == "" || data.LastName == "" {
		renderError(i18n.Text("First and last name are required.", "الاسم والشهرة مطلوبان.", lang))
		return
	}
	if !inputval.Email(data.Email) {
		renderError(i18n.Text("Please enter a valid email address.", "الرجاء إدخال بريد إلكتروني صالح.", lang))
		return
	}
	if !inputval.Phone(data.Phone) {
		renderError(i18n.Text("Please enter a valid Lebanese phone number.", "الرجاء إدخال رقم هاتف لبناني صالح.", lang))
		return
	}
	if !inputval.NationalID(data.NationalID) {
		renderError(i18n.Text("National ID must be 11 digits.", "يجب أن يتألف الرقم الوطني من 11 رقماً.", lang))
		return
	}
	dob, err := time.Parse("2006-01-02", data.DateOfBirth)
	if err != nil {
		renderError(i18n.Text("Please enter a valid date of birth.", "الرجاء إدخال تاريخ ولادة صالح.", lang))
		return
	}
	if age(dob, time.Now()) < minAge {
		renderError(i18n.Text("You must be at least 18 years old to register.", "يجب أن يكون عمرك 18 عاماً على الأقل للتسجيل.", lang))
		return
	}
	if err := inputval.Password(password); err != nil {
		renderError(i18n.Text("Password must be at least 6 characters.", "يجب أن تتألف كلمة المرور من 6 أحرف على الأقل.", lang))
		return
	}
	if password != confirm {
		renderError(i18n.Text("Passwords do not match.", "كلمتا المرور غير متطابقتين.", lang))
		return
	}
	if !agreed {
		renderError(i18n.Text("You must accept the terms and conditions.", "يجب الموافقة على الشروط والأحكام.", lang))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	u := models.User{
		ID:               uuid.NewString(),
		NationalID:       inputval.CanonicalNationalID(data.NationalID),
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		FirstNameArabic:  data.FirstNameArabic,
		LastNameArabic:   data.LastNameArabic,
		Email:            data.Email,
		Phone:            data.Phone,
		DateOfBirth:      dob,
		Gender:           data.Gender,
		Nationality:      "Lebanese",
		PasswordHash:     string(hash),
		RegistrationDate: time.Now(),
	}

	if err := h.State.RegisterAccount(u); err != nil {
		renderError(i18n.Text("An account with this email already exists.", "يوجد حساب مسجل بهذا البريد الإلكتروني.", lang))
		return
	}

	h.State.Login(u)
	if err := auth.SaveSignIn(w, r, u, lang); err != nil {
		h.Log.Error("persist session failed", zap.Error(err))
	}

	h.Log.Info("citizen registered",
		zap.String("user_id", u.ID),
		zap.String("email", u.Email))

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// age returns whole years between birth and now.
func age(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.YearDay() < birth.YearDay() {
		years--
	}
	return years
}
