// internal/app/features/home/handler.go
package home

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/hzein/bawaba/internal/app/state"
	"github.com/hzein/bawaba/internal/app/system/auth"
	"github.com/hzein/bawaba/internal/app/system/i18n"
	"github.com/hzein/bawaba/internal/app/system/viewdata"
	"github.com/hzein/bawaba/internal/domain/models"
)

/*───────────────────────────── handler ─────────────────────────────*/

// Handler renders the landing page.
type Handler struct {
	State *state.Store
	Log   *zap.Logger
}

// NewHandler constructs a home Handler.
func NewHandler(st *state.Store, log *zap.Logger) *Handler {
	return &Handler{State: st, Log: log}
}

// featuredCount is how many online services the landing page shows.
const featuredCount = 4

type serviceCard struct {
	ID       string
	Name     string
	Ministry string
	Fees     string
	Time     string
}

type homeData struct {
	viewdata.BaseVM
	Featured      []serviceCard
	ServiceCount  int
	MinistryCount int
}

// Landing renders the portal front page.
// GET /
func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	lang := auth.Lang(r)
	services := h.State.Services()

	var featured []serviceCard
	for _, s := range services {
		if s.Status != models.ServiceOnline {
			continue
		}
		featured = append(featured, serviceCard{
			ID:       s.ID,
			Name:     i18n.Text(s.Name, s.NameArabic, lang),
			Ministry: i18n.Text(s.Ministry, s.MinistryArabic, lang),
			Fees:     i18n.FormatCurrency(s.Fees, "USD", lang),
			Time:     s.EstimatedTime,
		})
		if len(featured) == featuredCount {
			break
		}
	}

	data := homeData{
		BaseVM:        viewdata.NewBaseVM(r, h.State, i18n.Text("Government Services Portal", "بوابة الخدمات الحكومية", lang), "/"),
		Featured:      featured,
		ServiceCount:  len(services),
		MinistryCount: len(h.State.Ministries()),
	}
	templates.Render(w, r, "home", data)
}
