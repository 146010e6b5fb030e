// internal/app/features/services/handler.go
package services

import (
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hzein/bawaba/internal/app/state"
	"github.com/hzein/bawaba/internal/app/system/auth"
	"github.com/hzein/bawaba/internal/app/system/i18n"
	"github.com/hzein/bawaba/internal/app/system/search"
	"github.com/hzein/bawaba/internal/app/system/viewdata"
	"github.com/hzein/bawaba/internal/domain/models"
)

/*───────────────────────────── handler ─────────────────────────────*/

// Handler serves the service catalog pages.
type Handler struct {
	State *state.Store
	Log   *zap.Logger
}

// NewHandler constructs a services Handler.
func NewHandler(st *state.Store, log *zap.Logger) *Handler {
	return &Handler{State: st, Log: log}
}

/*─────────────────────────── view models ───────────────────────────*/

type serviceRow struct {
	ID          string
	Name        string
	Description string
	Ministry    string
	Category    string
	Status      models.ServiceStatus
	Fees        string
	Time        string
}

type categoryOption struct {
	Value    models.ServiceCategory
	Selected bool
}

type listData struct {
	viewdata.BaseVM
	Services   []serviceRow
	Query      string
	Categories []categoryOption
	Status     string
	Total      int
}

type detailData struct {
	viewdata.BaseVM
	Service      serviceRow
	Documents    []string
	MinistryID   string
	CanApply     bool
	StatusLabel  string
	AlreadyOpen  bool
	EstimatedFee string
}

/*───────────────────────────── pages ───────────────────────────────*/

// List renders the catalog with search and filters.
// GET /services?q=&category=&status=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	lang := auth.Lang(r)

	q := query.Get(r, "q")
	category := query.Get(r, "category")
	status := query.Get(r, "status")

	all := h.State.Services()
	filtered := search.Filter(all, q, func(s models.Service) []string {
		return []string{s.Name, s.NameArabic, s.Description, s.DescriptionArabic, s.Ministry, s.MinistryArabic}
	})

	var rows []serviceRow
	for _, s := range filtered {
		if category != "" && string(s.Category) != category {
			continue
		}
		if status != "" && string(s.Status) != status {
			continue
		}
		rows = append(rows, h.row(s, lang))
	}

	opts := make([]categoryOption, 0, len(models.ServiceCategories))
	for _, c := range models.ServiceCategories {
		opts = append(opts, categoryOption{Value: c, Selected: string(c) == category})
	}

	data := listData{
		BaseVM:     viewdata.NewBaseVM(r, h.State, i18n.Text("Services", "الخدمات", lang), "/"),
		Services:   rows,
		Query:      q,
		Categories: opts,
		Status:     status,
		Total:      len(rows),
	}
	templates.Render(w, r, "services_list", data)
}

// Detail renders one service with its requirements and the apply
// control. Unknown IDs bounce back to the catalog.
// GET /services/{serviceID}
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	lang := auth.Lang(r)

	svc, err := h.State.ServiceByID(chi.URLParam(r, "serviceID"))
	if err != nil {
		if errors.Is(err, state.ErrNotFound) {
			http.Redirect(w, r, "/services", http.StatusSeeOther)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	docs := svc.RequiredDocuments
	alreadyOpen := false
	if u, ok := auth.CurrentUser(r); ok {
		alreadyOpen = h.State.HasApplicationForService(u.ID, svc.ID)
	}

	data := detailData{
		BaseVM:      viewdata.NewBaseVM(r, h.State, i18n.Text(svc.Name, svc.NameArabic, lang), "/services"),
		Service:     h.row(svc, lang),
		Documents:   docs,
		MinistryID:  svc.MinistryID,
		CanApply:    svc.Status.Acceptable() && !alreadyOpen,
		StatusLabel: StatusLabel(svc.Status, lang),
		AlreadyOpen: alreadyOpen,
	}
	templates.Render(w, r, "services_detail", data)
}

func (h *Handler) row(s models.Service, lang models.Language) serviceRow {
	return serviceRow{
		ID:          s.ID,
		Name:        i18n.Text(s.Name, s.NameArabic, lang),
		Description: i18n.Text(s.Description, s.DescriptionArabic, lang),
		Ministry:    i18n.Text(s.Ministry, s.MinistryArabic, lang),
		Category:    string(s.Category),
		Status:      s.Status,
		Fees:        i18n.FormatCurrency(s.Fees, "USD", lang),
		Time:        s.EstimatedTime,
	}
}

// StatusLabel renders a service status for display.
func StatusLabel(s models.ServiceStatus, lang models.Language) string {
	switch s {
	case models.ServiceOnline:
		return i18n.Text("Available", "متاحة", lang)
	case models.ServiceLimited:
		return i18n.Text("Limited availability", "متاحة بشكل محدود", lang)
	case models.ServiceMaintenance:
		return i18n.Text("Under maintenance", "قيد الصيانة", lang)
	default:
		return i18n.Text("Offline", "غير متاحة", lang)
	}
}
