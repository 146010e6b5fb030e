// internal/app/features/about/handler.go
package about

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"

	"github.com/hzein/bawaba/internal/app/state"
	"github.com/hzein/bawaba/internal/app/system/auth"
	"github.com/hzein/bawaba/internal/app/system/i18n"
	"github.com/hzein/bawaba/internal/app/system/viewdata"
)

// Handler renders the portal's about page.
type Handler struct {
	State *state.Store
}

// NewHandler constructs an about Handler.
func NewHandler(st *state.Store) *Handler {
	return &Handler{State: st}
}

// Routes mounts /about.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Show)
	return r
}

type feature struct {
	Title       string
	Description string
}

type stat struct {
	Number string
	Label  string
}

type pageData struct {
	viewdata.BaseVM
	Features []feature
	Stats    []stat
}

// Show renders the page.
// GET /about
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	lang := auth.Lang(r)
	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, h.State, i18n.Text("About the Portal", "حول البوابة", lang), "/"),
		Features: []feature{
			{
				Title:       i18n.Text("24/7 Availability", "متاح 24/7", lang),
				Description: i18n.Text("Access government services anytime, anywhere, without visiting physical offices.", "الوصول إلى الخدمات الحكومية في أي وقت ومن أي مكان دون زيارة المكاتب.", lang),
			},
			{
				Title:       i18n.Text("Secure & Reliable", "آمن وموثوق", lang),
				Description: i18n.Text("Bank-grade security with SSL encryption and secure data handling.", "أمان على مستوى البنوك مع تشفير SSL والتعامل الآمن مع البيانات.", lang),
			},
			{
				Title:       i18n.Text("Bilingual Support", "دعم ثنائي اللغة", lang),
				Description: i18n.Text("Full support for Arabic and English languages with proper RTL layout.", "دعم كامل للغتين العربية والإنجليزية مع تخطيط مناسب للعربية.", lang),
			},
			{
				Title:       i18n.Text("Citizen-Centric Design", "تصميم يركز على المواطن", lang),
				Description: i18n.Text("Intuitive interface designed with Lebanese citizens' needs in mind.", "واجهة سهلة الاستخدام مصممة مع مراعاة احتياجات المواطنين اللبنانيين.", lang),
			},
		},
		Stats: []stat{
			{Number: "15+", Label: i18n.Text("Government Services", "خدمة حكومية", lang)},
			{Number: "5", Label: i18n.Text("Ministries Connected", "وزارة متصلة", lang)},
			{Number: "24/7", Label: i18n.Text("Service Availability", "توفر الخدمة", lang)},
		},
	}
	templates.Render(w, r, "about", data)
}
