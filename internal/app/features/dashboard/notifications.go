// internal/app/features/dashboard/notifications.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hzein/bawaba/internal/app/system/auth"
	"github.com/hzein/bawaba/internal/app/system/i18n"
	"github.com/hzein/bawaba/internal/app/system/viewdata"
	"github.com/hzein/bawaba/internal/domain/models"
)

type notificationRow struct {
	ID        string
	Title     string
	Message   string
	Type      models.NotificationType
	IsRead    bool
	CreatedAt string
	ActionURL string
}

type notificationsData struct {
	viewdata.BaseVM
	Notifications []notificationRow
}

// Notifications renders the citizen's messages, newest first.
// GET /dashboard/notifications
func (h *Handler) Notifications(w http.ResponseWriter, r *http.Request) {
	lang := auth.Lang(r)
	u, _ := auth.CurrentUser(r)

	var rows []notificationRow
	for _, n := range h.State.NotificationsFor(u.ID) {
		rows = append(rows, notificationRow{
			ID:        n.ID,
			Title:     i18n.Text(n.Title, n.TitleArabic, lang),
			Message:   i18n.Text(n.Message, n.MessageArabic, lang),
			Type:      n.Type,
			IsRead:    n.IsRead,
			CreatedAt: i18n.FormatDateTime(n.CreatedAt, lang),
			ActionURL: n.ActionURL,
		})
	}

	data := notificationsData{
		BaseVM:        viewdata.NewBaseVM(r, h.State, i18n.Text("Notifications", "الإشعارات", lang), "/dashboard"),
		Notifications: rows,
	}
	templates.Render(w, r, "dashboard_notifications", data)
}

// MarkRead flags one notification as read. Unknown IDs are ignored;
// the citizen lands back on the list either way.
// POST /dashboard/notifications/{notificationID}/read
func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "notificationID")
	if !h.State.MarkNotificationAsRead(id) {
		h.Log.Debug("mark read on unknown notification", zap.String("notification_id", id))
	}
	http.Redirect(w, r, "/dashboard/notifications", http.StatusSeeOther)
}
