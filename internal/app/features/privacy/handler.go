// internal/app/features/privacy/handler.go
package privacy

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"

	"github.com/hzein/bawaba/internal/app/state"
	"github.com/hzein/bawaba/internal/app/system/auth"
	"github.com/hzein/bawaba/internal/app/system/i18n"
	"github.com/hzein/bawaba/internal/app/system/viewdata"
)

// Handler renders the privacy policy page.
type Handler struct {
	State *state.Store
}

// NewHandler constructs a privacy Handler.
func NewHandler(st *state.Store) *Handler {
	return &Handler{State: st}
}

// Routes mounts /privacy.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Show)
	return r
}

type section struct {
	Title   string
	Content string
}

type pageData struct {
	viewdata.BaseVM
	Sections []section
}

// Show renders the page.
// GET /privacy
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	lang := auth.Lang(r)
	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, h.State, i18n.Text("Privacy Policy", "سياسة الخصوصية", lang), "/"),
		Sections: []section{
			{
				Title:   i18n.Text("Information We Collect", "المعلومات التي نجمعها", lang),
				Content: i18n.Text("We collect information you provide directly, such as when you create an account, apply for services, or contact support: identification details, contact details, and service documentation.", "نجمع المعلومات التي تقدمها مباشرة، مثل إنشاء حساب أو التقدم للخدمات أو التواصل مع الدعم: بيانات التعريف وتفاصيل الاتصال ووثائق الخدمة.", lang),
			},
			{
				Title:   i18n.Text("How We Use Your Information", "كيف نستخدم معلوماتك", lang),
				Content: i18n.Text("Information is used to provide and improve services, process applications, verify identities, communicate with you, and comply with Lebanese law.", "تُستخدم المعلومات لتوفير الخدمات وتحسينها، ومعالجة الطلبات، والتحقق من الهويات، والتواصل معك، والامتثال للقانون اللبناني.", lang),
			},
			{
				Title:   i18n.Text("Information Sharing", "مشاركة المعلومات", lang),
				Content: i18n.Text("We do not sell, trade, or rent your personal information. Information may be shared only as required by Lebanese law, for legitimate government purposes, or with your explicit consent.", "نحن لا نبيع معلوماتك الشخصية ولا نتاجر بها ولا نؤجرها. قد تُشارك المعلومات فقط كما يتطلبه القانون اللبناني، أو لأغراض حكومية مشروعة، أو بموافقتك الصريحة.", lang),
			},
			{
				Title:   i18n.Text("Data Security", "أمان البيانات", lang),
				Content: i18n.Text("Appropriate technical and organizational measures protect your personal information against unauthorized access, alteration, disclosure, or destruction.", "تحمي التدابير التقنية والتنظيمية المناسبة معلوماتك الشخصية من الوصول غير المصرح به أو التغيير أو الكشف أو الإتلاف.", lang),
			},
			{
				Title:   i18n.Text("Your Rights", "حقوقك", lang),
				Content: i18n.Text("You have the right to access, update, correct, or delete your personal information, subject to Lebanese data protection regulations.", "لديك الحق في الوصول إلى معلوماتك الشخصية وتحديثها وتصحيحها أو حذفها، وفقاً للوائح حماية البيانات اللبنانية.", lang),
			},
			{
				Title:   i18n.Text("Cookies", "ملفات تعريف الارتباط", lang),
				Content: i18n.Text("Cookies maintain your session and language preference. You can control cookie settings through your browser preferences.", "تحافظ ملفات تعريف الارتباط على جلستك وتفضيل اللغة. يمكنك التحكم في إعداداتها من خلال تفضيلات المتصفح.", lang),
			},
		},
	}
	templates.Render(w, r, "privacy", data)
}
