// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	aboutfeature "github.com/hzein/bawaba/internal/app/features/about"
	applyfeature "github.com/hzein/bawaba/internal/app/features/apply"
	contactfeature "github.com/hzein/bawaba/internal/app/features/contact"
	dashboardfeature "github.com/hzein/bawaba/internal/app/features/dashboard"
	errorsfeature "github.com/hzein/bawaba/internal/app/features/errors"
	healthfeature "github.com/hzein/bawaba/internal/app/features/health"
	helpfeature "github.com/hzein/bawaba/internal/app/features/help"
	homefeature "github.com/hzein/bawaba/internal/app/features/home"
	languagefeature "github.com/hzein/bawaba/internal/app/features/language"
	loginfeature "github.com/hzein/bawaba/internal/app/features/login"
	logoutfeature "github.com/hzein/bawaba/internal/app/features/logout"
	ministriesfeature "github.com/hzein/bawaba/internal/app/features/ministries"
	privacyfeature "github.com/hzein/bawaba/internal/app/features/privacy"
	registerfeature "github.com/hzein/bawaba/internal/app/features/register"
	servicesfeature "github.com/hzein/bawaba/internal/app/features/services"
	termsfeature "github.com/hzein/bawaba/internal/app/features/terms"
	"github.com/hzein/bawaba/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, backend construction, schema
// checks, and the Startup hook have completed. It initializes the
// session cookie store and template engine, applies session and CSRF
// middleware, and mounts the feature routers: the public catalog,
// authentication, the application wizard, and the citizen dashboard.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	if err := auth.InitSessionStore(appCfg.SessionKey, appCfg.SessionDomain, secure, logger); err != nil {
		logger.Error("session store init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)
	st := deps.Store

	r := chi.NewRouter()

	// Global middleware: session hydration first so CurrentUser and the
	// language are in context, then CSRF for all mutating routes.
	r.Use(auth.LoadSession(st))
	r.Use(csrf.Protect([]byte(appCfg.CSRFKey),
		csrf.Secure(secure),
		csrf.Path("/"),
	))

	// Error pages. NotFound is registered before the mounts so chi
	// propagates it into the feature subrouters.
	errorsHandler := errorsfeature.NewHandler(st)
	r.NotFound(errorsHandler.NotFound)
	r.Get("/forbidden", errorsHandler.Forbidden)

	// Health check endpoint for load balancers and orchestrators
	r.Mount("/health", healthfeature.Routes(healthfeature.NewHandler(st, logger)))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages
	r.Mount("/", homefeature.Routes(homefeature.NewHandler(st, logger)))
	r.Mount("/services", servicesfeature.Routes(servicesfeature.NewHandler(st, logger)))
	r.Mount("/ministries", ministriesfeature.Routes(ministriesfeature.NewHandler(st, logger)))
	r.Mount("/terms", termsfeature.Routes(termsfeature.NewHandler(st)))
	r.Mount("/about", aboutfeature.Routes(aboutfeature.NewHandler(st)))
	r.Mount("/help", helpfeature.Routes(helpfeature.NewHandler(st)))
	r.Mount("/privacy", privacyfeature.Routes(privacyfeature.NewHandler(st)))
	r.Mount("/contact", contactfeature.Routes(contactfeature.NewHandler(st, logger)))
	r.Mount("/language", languagefeature.Routes(languagefeature.NewHandler(st, logger)))

	// Authentication
	r.Mount("/auth/login", loginfeature.Routes(loginfeature.NewHandler(st, logger)))
	r.Mount("/auth/register", registerfeature.Routes(registerfeature.NewHandler(st, logger)))
	r.Mount("/logout", logoutfeature.Routes(logoutfeature.NewHandler(st, deps.Drafts, logger)))

	// Signed-in areas
	applyHandler := applyfeature.NewHandler(st, deps.Drafts, errLog, logger)
	r.Route("/services/{serviceID}/apply", func(sr chi.Router) {
		sr.Use(auth.RequireSignedIn)
		sr.Mount("/", applyfeature.Routes(applyHandler))
	})

	dashboardHandler := dashboardfeature.NewHandler(st, errLog, logger)
	r.Route("/dashboard", func(dr chi.Router) {
		dr.Use(auth.RequireSignedIn)
		dr.Mount("/", dashboardfeature.Routes(dashboardHandler))
	})

	return r, nil
}
