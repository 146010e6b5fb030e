// internal/app/features/help/handler.go
package help

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"

	"github.com/hzein/bawaba/internal/app/state"
	"github.com/hzein/bawaba/internal/app/system/auth"
	"github.com/hzein/bawaba/internal/app/system/i18n"
	"github.com/hzein/bawaba/internal/app/system/search"
	"github.com/hzein/bawaba/internal/app/system/viewdata"
	"github.com/hzein/bawaba/internal/domain/models"
)

// Handler renders the help page: a searchable FAQ.
type Handler struct {
	State *state.Store
}

// NewHandler constructs a help Handler.
func NewHandler(st *state.Store) *Handler {
	return &Handler{State: st}
}

// Routes mounts /help.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Show)
	return r
}

type faqEntry struct {
	Question string
	Answer   string
}

type pageData struct {
	viewdata.BaseVM
	Query string
	FAQ   []faqEntry
}

// Show renders the FAQ, filtered by the q parameter when present.
// GET /help
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	lang := auth.Lang(r)
	term := query.Get(r, "q")

	entries := search.Filter(faq(lang), term, func(e faqEntry) []string {
		return []string{e.Question, e.Answer}
	})

	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, h.State, i18n.Text("Help & FAQ", "المساعدة والأسئلة الشائعة", lang), "/"),
		Query:  term,
		FAQ:    entries,
	}
	templates.Render(w, r, "help", data)
}

func faq(lang models.Language) []faqEntry {
	return []faqEntry{
		{
			Question: i18n.Text("How do I register for government services?", "كيف يمكنني التسجيل للحصول على الخدمات الحكومية؟", lang),
			Answer:   i18n.Text("Open the registration page, fill out the required information including your National ID, personal details, and address, then sign in with your new account.", "افتح صفحة التسجيل، واملأ المعلومات المطلوبة بما في ذلك الرقم الوطني والتفاصيل الشخصية والعنوان، ثم سجّل الدخول بحسابك الجديد.", lang),
		},
		{
			Question: i18n.Text("What documents do I need for ID card renewal?", "ما هي المستندات المطلوبة لتجديد بطاقة الهوية؟", lang),
			Answer:   i18n.Text("Your current ID card, a recent passport-sized photo, proof of residence, and payment of the official fee. The process takes 5 to 7 business days.", "بطاقة الهوية الحالية، صورة حديثة بحجم جواز السفر، إثبات الإقامة، ودفع الرسم الرسمي. تستغرق العملية من 5 إلى 7 أيام عمل.", lang),
		},
		{
			Question: i18n.Text("How can I track my application status?", "كيف يمكنني تتبع حالة طلبي؟", lang),
			Answer:   i18n.Text("Sign in and open My Applications on your dashboard. Each application has a unique tracking number and a progress indicator.", "سجّل الدخول وافتح قسم طلباتي في لوحتك. كل طلب له رقم تتبع فريد ومؤشر تقدم.", lang),
		},
		{
			Question: i18n.Text("What payment methods are accepted?", "ما هي طرق الدفع المقبولة؟", lang),
			Answer:   i18n.Text("Credit card, bank transfer, or cash at the counter. Fees are shown on each service page before you apply.", "بطاقة الائتمان أو التحويل المصرفي أو الدفع نقداً لدى الصندوق. تُعرض الرسوم على صفحة كل خدمة قبل التقديم.", lang),
		},
		{
			Question: i18n.Text("What should I do if a service is under maintenance?", "ماذا أفعل إذا كانت الخدمة تحت الصيانة؟", lang),
			Answer:   i18n.Text("Services under maintenance cannot accept applications. Please check back later or contact support for updates on availability.", "الخدمات تحت الصيانة لا تقبل الطلبات. يرجى المراجعة لاحقاً أو التواصل مع الدعم لمعرفة موعد توفرها.", lang),
		},
	}
}
