// internal/app/features/dashboard/applications.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/hzein/bawaba/internal/app/system/auth"
	"github.com/hzein/bawaba/internal/app/system/i18n"
	"github.com/hzein/bawaba/internal/app/system/progress"
	"github.com/hzein/bawaba/internal/app/system/viewdata"
	"github.com/hzein/bawaba/internal/domain/models"
)

type applicationRow struct {
	ID             string
	ServiceName    string
	TrackingNumber string
	Status         models.ApplicationStatus
	StatusLabel    string
	Submitted      string
	Estimated      string
	Percent        int
	Fees           string
	IsPaid         bool
	Documents      int
}

type applicationsData struct {
	viewdata.BaseVM
	Applications []applicationRow
}

// Applications renders the tracking list, newest first.
// GET /dashboard/applications
func (h *Handler) Applications(w http.ResponseWriter, r *http.Request) {
	lang := auth.Lang(r)
	u, _ := auth.CurrentUser(r)

	data := applicationsData{
		BaseVM:       viewdata.NewBaseVM(r, h.State, i18n.Text("My Applications", "طلباتي", lang), "/dashboard"),
		Applications: h.applicationRows(h.State.ApplicationsFor(u.ID), lang),
	}
	templates.Render(w, r, "dashboard_applications", data)
}

// applicationRows resolves service names and formats dates for
// display. A service missing from the catalog renders as unknown
// rather than dropping the row.
func (h *Handler) applicationRows(apps []models.Application, lang models.Language) []applicationRow {
	rows := make([]applicationRow, 0, len(apps))
	for _, a := range apps {
		name := i18n.Text("Unknown Service", "خدمة غير معروفة", lang)
		if svc, err := h.State.ServiceByID(a.ServiceID); err == nil {
			name = i18n.Text(svc.Name, svc.NameArabic, lang)
		}
		rows = append(rows, applicationRow{
			ID:             a.ID,
			ServiceName:    name,
			TrackingNumber: a.TrackingNumber,
			Status:         a.Status,
			StatusLabel:    statusLabel(a.Status, lang),
			Submitted:      i18n.FormatDate(a.SubmissionDate, lang),
			Estimated:      i18n.FormatDate(a.EstimatedCompletionDate, lang),
			Percent:        progress.Percent(a.CurrentStep, a.TotalSteps),
			Fees:           i18n.FormatCurrency(a.Fees, "USD", lang),
			IsPaid:         a.IsPaid,
			Documents:      len(a.Documents),
		})
	}
	return rows
}

func statusLabel(s models.ApplicationStatus, lang models.Language) string {
	switch s {
	case models.ApplicationSubmitted:
		return i18n.Text("Submitted", "تم التقديم", lang)
	case models.ApplicationUnderReview:
		return i18n.Text("Under review", "قيد المراجعة", lang)
	case models.ApplicationApproved:
		return i18n.Text("Approved", "مقبول", lang)
	case models.ApplicationRejected:
		return i18n.Text("Rejected", "مرفوض", lang)
	case models.ApplicationCompleted:
		return i18n.Text("Completed", "منجز", lang)
	case models.ApplicationCancelled:
		return i18n.Text("Cancelled", "ملغى", lang)
	default:
		return i18n.Text("Draft", "مسودة", lang)
	}
}
