// internal/app/features/ministries/handler.go
package ministries

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

// Handler serves the ministry directory pages.
type Handler struct {
	State *state.Store
	Log   *zap.Logger
}

// NewHandler constructs a ministries Handler.
func NewHandler(st *state.Store, log *zap.Logger) *Handler {
	return &Handler{State: st, Log: log}
}

type ministryRow struct {
	ID           string
	Name         string
	Description  string
	ServiceCount int
	Status       models.ServiceStatus
}

type serviceLink struct {
	ID   string
	Name string
}

type listData struct {
	viewdata.BaseVM
	Ministries []ministryRow
	Query      string
}

type detailData struct {
	viewdata.BaseVM
	Ministry ministryRow
	Contact  models.MinistryContact
	Address  string
	Services []serviceLink
}

// List renders the ministry directory.
// GET /ministries?q=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	lang := auth.Lang(r)
	q := query.Get(r, "q")

	all := search.Filter(h.State.Ministries(), q, func(m models.Ministry) []string {
		return []string{m.Name, m.NameArabic, m.Description, m.DescriptionArabic}
	})

	rows := make([]ministryRow, 0, len(all))
	for _, m := range all {
		rows = append(rows, h.row(m, lang))
	}

	data := listData{
		BaseVM:     viewdata.NewBaseVM(r, h.State, i18n.Text("Ministries", "الوزارات", lang), "/"),
		Ministries: rows,
		Query:      q,
	}
	templates.Render(w, r, "ministries_list", data)
}

// Detail renders one ministry with its contact block and services.
// GET /ministries/{ministryID}
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	lang := auth.Lang(r)

	m, err := h.State.MinistryByID(chi.URLParam(r, "ministryID"))
	if err != nil {
		if errors.Is(err, state.ErrNotFound) {
			http.Redirect(w, r, "/ministries", http.StatusSeeOther)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	links := make([]serviceLink, 0, len(m.Services))
	for _, sid := range m.Services {
		svc, err := h.State.ServiceByID(sid)
		if err != nil {
			continue
		}
		links = append(links, serviceLink{ID: svc.ID, Name: i18n.Text(svc.Name, svc.NameArabic, lang)})
	}

	data := detailData{
		BaseVM:   viewdata.NewBaseVM(r, h.State, i18n.Text(m.Name, m.NameArabic, lang), "/ministries"),
		Ministry: h.row(m, lang),
		Contact:  m.Contact,
		Address:  i18n.Text(m.Contact.Address, m.Contact.AddressArabic, lang),
		Services: links,
	}
	templates.Render(w, r, "ministries_detail", data)
}

func (h *Handler) row(m models.Ministry, lang models.Language) ministryRow {
	return ministryRow{
		ID:           m.ID,
		Name:         i18n.Text(m.Name, m.NameArabic, lang),
		Description:  i18n.Text(m.Description, m.DescriptionArabic, lang),
		ServiceCount: len(m.Services),
		Status:       m.Status,
	}
}
