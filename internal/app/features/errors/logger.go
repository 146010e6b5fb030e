// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/hzein/bawaba/internal/app/system/auth"
	"github.com/hzein/bawaba/internal/app/system/viewdata"
	"github.com/hzein/bawaba/internal/domain/models"
)

// ErrorLogger logs handler failures and renders the citizen-facing
// error page in one call, so handlers never write bare http.Error
// bodies for page requests.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(log *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: log}
}

// LogServerError logs err at error level and renders a 500 page with
// userMsg. backURL seeds the page's back link; empty falls back to /.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, op string, err error, userMsg, backURL string) {
	e.Log.Error(op, zap.Error(err), zap.String("path", r.URL.Path))
	e.render(w, r, http.StatusInternalServerError, userMsg, backURL)
}

// LogBadRequest logs err at warn level and renders a 400 page with
// userMsg.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, op string, err error, userMsg, backURL string) {
	e.Log.Warn(op, zap.Error(err), zap.String("path", r.URL.Path))
	e.render(w, r, http.StatusBadRequest, userMsg, backURL)
}

func (e *ErrorLogger) render(w http.ResponseWriter, r *http.Request, status int, userMsg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	title := "Something went wrong"
	if langOf(r).IsArabic() {
		title = "حدث خطأ ما"
	}
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, nil, title, backURL),
		Message: userMsg,
	}
	w.WriteHeader(status)
	templates.Render(w, r, "error_page", data)
}

func langOf(r *http.Request) models.Language {
	return auth.Lang(r)
}
