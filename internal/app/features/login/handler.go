// internal/app/features/login/handler.go
package login

import (
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/hzein/bawaba/internal/app/fixtures"
	"github.com/hzein/bawaba/internal/app/state"
	"github.com/hzein/bawaba/internal/app/system/auth"
	"github.com/hzein/bawaba/internal/app/system/formutil"
	"github.com/hzein/bawaba/internal/app/system/i18n"
	"github.com/hzein/bawaba/internal/app/system/inputval"
	"github.com/hzein/bawaba/internal/app/system/latency"
	"github.com/hzein/bawaba/internal/domain/models"
)

/*───────────────────────────── handler ─────────────────────────────*/

// Handler serves the sign-in pages. Sign-in is simulated: any valid
// email with a long-enough password signs in the demo citizen, unless
// the email belongs to a self-registered account, in which case the
// password is verified against that account's hash.
type Handler struct {
	State *state.Store
	Log   *zap.Logger

	// Delay is the simulated gateway round trip.
	Delay time.Duration
}

// NewHandler constructs a login Handler.
func NewHandler(st *state.Store, log *zap.Logger) *Handler {
	return &Handler{State: st, Log: log, Delay: latency.Login()}
}

type formData struct {
	formutil.Base
	Email     string
	ReturnURL string
}

/*───────────────────────────── pages ───────────────────────────────*/

// ShowForm renders the sign-in page.
// GET /auth/login?return=...
func (h *Handler) ShowForm(w http.ResponseWriter, r *http.Request) {
	lang := auth.Lang(r)
	data := formData{ReturnURL: query.Get(r, "return")}
	formutil.SetBase(&data.Base, r, h.State, i18n.Text("Sign in", "تسجيل الدخول", lang), "/")
	templates.Render(w, r, "login", data)
}

// Submit validates the credentials, pauses for the simulated round
// trip, and signs the citizen in.
// POST /auth/login
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	lang := auth.Lang(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	ret := r.PostFormValue("return")

	renderError := func(msg string) {
		data := formData{Email: email, ReturnURL: ret}
		formutil.SetBase(&data.Base, r, h.State, i18n.Text("Sign in", "تسجيل الدخول", lang), "/")
		data.SetError(msg)
		templates.Render(w, r, "login", data)
	}

	if !inputval.Email(email) {
		renderError(i18n.Text("Please enter a valid email address.", "الرجاء إدخال بريد إلكتروني صالح.", lang))
		return
	}
	if err := inputval.Password(password); err != nil {
		renderError(i18n.Text("Password must be at least 6 characters.", "يجب أن تتألف كلمة المرور من 6 أحرف على الأقل.", lang))
		return
	}

	if err := latency.Sleep(r.Context(), h.Delay); err != nil {
		return
	}

	u := fixtures.DemoUser()
	if account, err := h.State.AccountByEmail(email); err == nil {
		if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
			renderError(i18n.Text("Incorrect password for this account.", "كلمة المرور غير صحيحة لهذا الحساب.", lang))
			return
		}
		u = account
	}

	h.signIn(w, r, u, lang)

	h.Log.Info("citizen signed in",
		zap.String("user_id", u.ID),
		zap.String("email", u.Email))

	http.Redirect(w, r, urlutil.SafeReturn(ret, "", "/dashboard"), http.StatusSeeOther)
}

// Demo signs in the demo citizen without credentials.
// POST /auth/login/demo
func (h *Handler) Demo(w http.ResponseWriter, r *http.Request) {
	lang := auth.Lang(r)
	u := fixtures.DemoUser()
	h.signIn(w, r, u, lang)

	h.Log.Info("demo citizen signed in", zap.String("user_id", u.ID))
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// signIn updates the store and the cookie, and pushes the welcome
// notifications on the citizen's first sign-in of this process.
func (h *Handler) signIn(w http.ResponseWriter, r *http.Request, u models.User, lang models.Language) {
	h.State.Login(u)

	if len(h.State.NotificationsFor(u.ID)) == 0 {
		for _, n := range fixtures.WelcomeNotifications(u.ID, time.Now()) {
			h.State.AddNotification(n)
		}
	}

	if err := auth.SaveSignIn(w, r, u, lang); err != nil {
		h.Log.Error("persist session failed", zap.Error(err))
	}
}
