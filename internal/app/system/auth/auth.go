package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/hzein/bawaba/internal/app/state"
	"github.com/hzein/bawaba/internal/domain/models"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Session constants & globals                                                |
*─────────────────────────────────────────────────────────────────────────────*/

const (
	SessionName = "bawaba-session"

	isAuthKey = "is_authenticated"
	userKey   = "user"
	langKey   = "language"
	sidKey    = "sid"
)

// Store is initialised once via InitSessionStore.
var Store *sessions.CookieStore

// The cookie persists exactly three things across restarts: the
// citizen record, the selected language, and the authenticated flag.
// Everything else (applications, notifications, catalog) is rebuilt
// in memory.

/*─────────────────────────────────────────────────────────────────────────────*
| Current-User helper                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionUser is what we cache from the cookie & inject into r.Context().
type SessionUser struct {
	ID         string
	Name       string
	NameArabic string
	Email      string
}

type ctxKey string

const (
	currentUserKey ctxKey = "currentUser"
	languageKey    ctxKey = "language"
	sessionIDKey   ctxKey = "sessionID"
)

// CurrentUser returns the signed-in citizen & "found?" flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// Lang returns the request's portal language, defaulting to English.
func Lang(r *http.Request) models.Language {
	if l, ok := r.Context().Value(languageKey).(models.Language); ok {
		return l
	}
	return models.English
}

// SessionID returns the stable per-browser ID used to key wizard
// drafts. Empty until LoadSession has run.
func SessionID(r *http.Request) string {
	if sid, ok := r.Context().Value(sessionIDKey).(string); ok {
		return sid
	}
	return ""
}

// LoadSession restores the persisted triple from the cookie on every
// request: it injects the citizen and language into r.Context() and
// re-hydrates the in-memory store after a process restart. If the
// session store has not been initialized yet, it is a no-op.
func LoadSession(st *state.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if Store == nil {
				next.ServeHTTP(w, r)
				return
			}

			sess, _ := Store.Get(r, SessionName)

			sid := getString(sess, sidKey)
			if sid == "" {
				sid = uuid.NewString()
				sess.Values[sidKey] = sid
				_ = sess.Save(r, w)
			}
			ctx := context.WithValue(r.Context(), sessionIDKey, sid)

			lang := models.LanguageByCode(getString(sess, langKey))
			ctx = context.WithValue(ctx, languageKey, lang)
			if st.Language() != lang {
				st.SetLanguage(lang)
			}

			if isAuth, _ := sess.Values[isAuthKey].(bool); isAuth {
				var u models.User
				if err := json.Unmarshal([]byte(getString(sess, userKey)), &u); err == nil && u.ID != "" {
					if cur, ok := st.User(); !ok || cur.ID != u.ID {
						st.Login(u)
					}
					ctx = context.WithValue(ctx, currentUserKey, &SessionUser{
						ID:         u.ID,
						Name:       u.FirstName + " " + u.LastName,
						NameArabic: u.FirstNameArabic + " " + u.LastNameArabic,
						Email:      u.Email,
					})
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSignedIn ensures there is a citizen in context (set by LoadSession).
// If not signed in:
//   - HTMX: sends HX-Redirect to /auth/login?return=...
//   - HTML: 303 redirect to /auth/login?return=...
//   - API:  401 Unauthorized with a plain error body.
func RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}

		ret := url.QueryEscape(currentURI(r))

		if r.Header.Get("HX-Request") == "true" {
			w.Header().Set("HX-Redirect", "/auth/login?return="+ret)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if wantsHTML(r) {
			http.Redirect(w, r, "/auth/login?return="+ret, http.StatusSeeOther)
			return
		}

		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| Cookie writers                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// SaveSignIn persists the authenticated triple after a successful
// sign-in (or a profile edit, which re-persists the citizen record).
func SaveSignIn(w http.ResponseWriter, r *http.Request, u models.User, lang models.Language) error {
	sess, _ := Store.Get(r, SessionName)
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal session user: %w", err)
	}
	sess.Values[isAuthKey] = true
	sess.Values[userKey] = string(raw)
	sess.Values[langKey] = lang.Code
	if getString(sess, sidKey) == "" {
		sess.Values[sidKey] = uuid.NewString()
	}
	return sess.Save(r, w)
}

// SaveLanguage persists the language selection without touching the
// rest of the triple.
func SaveLanguage(w http.ResponseWriter, r *http.Request, lang models.Language) error {
	sess, _ := Store.Get(r, SessionName)
	sess.Values[langKey] = lang.Code
	return sess.Save(r, w)
}

// ClearSession drops the citizen and the authenticated flag from the
// cookie. Language and the session ID survive so sign-out keeps the
// citizen's language and a later sign-in reuses the same draft key.
func ClearSession(w http.ResponseWriter, r *http.Request) error {
	sess, _ := Store.Get(r, SessionName)
	delete(sess.Values, userKey)
	sess.Values[isAuthKey] = false
	return sess.Save(r, w)
}

// InitSessionStore initializes the global session Store using the provided
// session key and domain. The `secure` flag controls whether cookies are
// marked Secure and which SameSite mode is used.
func InitSessionStore(sessionKey, domain string, secure bool, logger *zap.Logger) error {
	if sessionKey == "" {
		return fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
	}

	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}

	store.Options = opts
	Store = store

	logger.Info("session store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Test hooks                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// WithTestUser injects a session user into the request context,
// bypassing the cookie. Test-only.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// WithTestLang injects a portal language into the request context.
// Test-only.
func WithTestLang(r *http.Request, lang models.Language) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), languageKey, lang))
}

// WithTestSessionID injects a session ID into the request context.
// Test-only.
func WithTestSessionID(r *http.Request, sid string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), sessionIDKey, sid))
}

// helpers

// getString safely extracts a string from a session value.
func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}

func wantsHTML(r *http.Request) bool {
	if r.Header.Get("HX-Request") == "true" {
		return true
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html")
}

func currentURI(r *http.Request) string {
	u := *r.URL
	return u.RequestURI()
}
