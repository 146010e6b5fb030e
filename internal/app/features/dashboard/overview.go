// internal/app/features/dashboard/overview.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/hzein/bawaba/internal/app/system/auth"
	"github.com/hzein/bawaba/internal/app/system/i18n"
	"github.com/hzein/bawaba/internal/app/system/viewdata"
	"github.com/hzein/bawaba/internal/domain/models"
)

type overviewData struct {
	viewdata.BaseVM
	Total      int
	Pending    int
	Completed  int
	Unread     int
	Recent     []applicationRow
	WelcomeMsg string
}

// Overview renders the dashboard landing page with submission stats.
// GET /dashboard
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	lang := auth.Lang(r)
	u, _ := auth.CurrentUser(r)

	apps := h.State.ApplicationsFor(u.ID)
	pending, completed := 0, 0
	for _, a := range apps {
		switch a.Status {
		case models.ApplicationCompleted, models.ApplicationApproved:
			completed++
		case models.ApplicationRejected, models.ApplicationCancelled:
		default:
			pending++
		}
	}

	recent := apps
	if len(recent) > 3 {
		recent = recent[:3]
	}

	data := overviewData{
		BaseVM:     viewdata.NewBaseVM(r, h.State, i18n.Text("My Dashboard", "لوحتي", lang), "/"),
		Total:      len(apps),
		Pending:    pending,
		Completed:  completed,
		Unread:     h.State.UnreadCount(u.ID),
		Recent:     h.applicationRows(recent, lang),
		WelcomeMsg: i18n.Text("Welcome back", "أهلاً بعودتك", lang),
	}
	templates.Render(w, r, "dashboard_overview", data)
}
