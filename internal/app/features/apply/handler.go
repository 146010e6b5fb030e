// internal/app/features/apply/handler.go
package apply

import (
	stderrors "errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hzein/bawaba/internal/app/features/errors"
	"github.com/hzein/bawaba/internal/app/state"
	"github.com/hzein/bawaba/internal/app/system/auth"
	"github.com/hzein/bawaba/internal/app/system/i18n"
	"github.com/hzein/bawaba/internal/app/system/inputval"
	"github.com/hzein/bawaba/internal/app/system/progress"
	"github.com/hzein/bawaba/internal/app/system/viewdata"
	"github.com/hzein/bawaba/internal/app/wizard"
	"github.com/hzein/bawaba/internal/domain/models"
)

// maxUploadBytes caps the simulated document upload.
const maxUploadBytes = 10 << 20

/*───────────────────────────── handler ─────────────────────────────*/

// Handler drives the four-step application wizard. Drafts live in the
// registry keyed by browser session; nothing is stored until the
// review step submits.
type Handler struct {
	State  *state.Store
	Drafts *wizard.Registry
	ErrLog *errors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs an apply Handler.
func NewHandler(st *state.Store, drafts *wizard.Registry, errLog *errors.ErrorLogger, log *zap.Logger) *Handler {
	return &Handler{State: st, Drafts: drafts, ErrLog: errLog, Log: log}
}

// Routes mounts the wizard under /services/{serviceID}/apply.
// Bootstrap wraps the mount in RequireSignedIn.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Show)
	r.Post("/personal", h.SubmitPersonal)
	r.Post("/documents", h.SubmitDocuments)
	r.Post("/documents/remove", h.RemoveDocument)
	r.Post("/payment", h.SubmitPayment)
	r.Post("/review", h.SubmitReview)
	return r
}

/*─────────────────────────── view models ───────────────────────────*/

type documentRow struct {
	Index int
	Name  string
	Size  string
}

type methodOption struct {
	Value    models.PaymentMethod
	Label    string
	Selected bool
}

type wizardData struct {
	viewdata.BaseVM
	ServiceID      string
	ServiceName    string
	Fees           string
	Step           wizard.Step
	StepTitle      string
	Percent        int
	Personal       wizard.PersonalInfo
	Documents      []documentRow
	Required       []string
	Methods        []methodOption
	AdditionalInfo string
	AgreedToTerms  bool
	Error          string
}

/*───────────────────────────── pages ───────────────────────────────*/

// Show renders the draft's current step.
// GET /services/{serviceID}/apply
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	svc, draft, ok := h.load(w, r)
	if !ok {
		return
	}
	h.render(w, r, svc, draft, "")
}

// SubmitPersonal validates step one and advances.
// POST /services/{serviceID}/apply/personal
func (h *Handler) SubmitPersonal(w http.ResponseWriter, r *http.Request) {
	svc, draft, ok := h.load(w, r)
	if !ok {
		return
	}
	lang := auth.Lang(r)

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/services/"+svc.ID+"/apply")
		return
	}

	draft.Personal = wizard.PersonalInfo{
		FullName:   strings.TrimSpace(r.PostFormValue("full_name")),
		NationalID: strings.TrimSpace(r.PostFormValue("national_id")),
		Phone:      strings.TrimSpace(r.PostFormValue("phone")),
		Email:      strings.TrimSpace(r.PostFormValue("email")),
		Address:    strings.TrimSpace(r.PostFormValue("address")),
	}

	switch {
	case draft.Personal.FullName == "":
		h.render(w, r, svc, draft, i18n.Text("Full name is required.", "الاسم الكامل مطلوب.", lang))
		return
	case !inputval.NationalID(draft.Personal.NationalID):
		h.render(w, r, svc, draft, i18n.Text("National ID must be 11 digits.", "يجب أن يتألف الرقم الوطني من 11 رقماً.", lang))
		return
	case !inputval.Phone(draft.Personal.Phone):
		h.render(w, r, svc, draft, i18n.Text("Please enter a valid Lebanese phone number.", "الرجاء إدخال رقم هاتف لبناني صالح.", lang))
		return
	case !inputval.Email(draft.Personal.Email):
		h.render(w, r, svc, draft, i18n.Text("Please enter a valid email address.", "الرجاء إدخال بريد إلكتروني صالح.", lang))
		return
	}

	draft.Personal.NationalID = inputval.CanonicalNationalID(draft.Personal.NationalID)
	draft.Next()
	h.redirectToWizard(w, r, svc.ID)
}

// SubmitDocuments records a simulated upload and, on "next", advances.
// POST /services/{serviceID}/apply/documents
func (h *Handler) SubmitDocuments(w http.ResponseWriter, r *http.Request) {
	svc, draft, ok := h.load(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil && !stderrors.Is(err, http.ErrNotMultipart) {
		h.ErrLog.LogBadRequest(w, r, "parse upload failed", err, "Invalid upload.", "/services/"+svc.ID+"/apply")
		return
	}

	if r.MultipartForm != nil {
		if files := r.MultipartForm.File["document"]; len(files) > 0 {
			fh := files[0]
			draft.AttachDocument(fh.Filename, fh.Size)
			h.Log.Debug("document attached",
				zap.String("service_id", svc.ID),
				zap.String("name", fh.Filename),
				zap.Int64("size", fh.Size))
		}
	}

	switch r.PostFormValue("action") {
	case "back":
		draft.Previous()
	case "next":
		draft.Next()
	}
	h.redirectToWizard(w, r, svc.ID)
}

// RemoveDocument drops one attachment by index.
// POST /services/{serviceID}/apply/documents/remove
func (h *Handler) RemoveDocument(w http.ResponseWriter, r *http.Request) {
	svc, draft, ok := h.load(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/services/"+svc.ID+"/apply")
		return
	}
	if i, err := strconv.Atoi(r.PostFormValue("index")); err == nil {
		draft.RemoveDocument(i)
	}
	h.redirectToWizard(w, r, svc.ID)
}

// SubmitPayment records the fee settlement choice.
// POST /services/{serviceID}/apply/payment
func (h *Handler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	svc, draft, ok := h.load(w, r)
	if !ok {
		return
	}
	lang := auth.Lang(r)

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/services/"+svc.ID+"/apply")
		return
	}

	if r.PostFormValue("action") == "back" {
		draft.Previous()
		h.redirectToWizard(w, r, svc.ID)
		return
	}

	method := models.PaymentMethod(r.PostFormValue("payment_method"))
	if !method.Valid() {
		h.render(w, r, svc, draft, i18n.Text("Please choose a payment method.", "الرجاء اختيار طريقة الدفع.", lang))
		return
	}
	draft.PaymentMethod = method
	draft.Next()
	h.redirectToWizard(w, r, svc.ID)
}

// SubmitReview finalizes the draft: on "submit" it stores the
// application and redirects to the tracking page.
// POST /services/{serviceID}/apply/review
func (h *Handler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	svc, draft, ok := h.load(w, r)
	if !ok {
		return
	}
	lang := auth.Lang(r)

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/services/"+svc.ID+"/apply")
		return
	}

	draft.AdditionalInfo = r.PostFormValue("additional_info")
	draft.AgreedToTerms = r.PostFormValue("terms") == "on"

	if r.PostFormValue("action") == "back" {
		draft.Previous()
		h.redirectToWizard(w, r, svc.ID)
		return
	}

	user, ok2 := h.State.User()
	if !ok2 {
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		return
	}

	app, err := wizard.NewSubmitter(h.State).Submit(r.Context(), draft, svc, user)
	switch {
	case err == nil:
		h.Drafts.Delete(auth.SessionID(r), svc.ID)
		h.Log.Info("application submitted",
			zap.String("user_id", user.ID),
			zap.String("service_id", svc.ID),
			zap.String("tracking_number", app.TrackingNumber))
		http.Redirect(w, r, "/dashboard/applications", http.StatusSeeOther)
	case stderrors.Is(err, wizard.ErrTermsNotAccepted):
		h.render(w, r, svc, draft, i18n.Text("You must accept the terms and conditions.", "يجب الموافقة على الشروط والأحكام.", lang))
	case stderrors.Is(err, wizard.ErrDuplicate), stderrors.Is(err, wizard.ErrAlreadySubmitted):
		http.Redirect(w, r, "/dashboard/applications", http.StatusSeeOther)
	case stderrors.Is(err, wizard.ErrServiceClosed):
		http.Redirect(w, r, "/services/"+svc.ID, http.StatusSeeOther)
	default:
		h.ErrLog.LogServerError(w, r, "submit application failed", err, "Could not submit the application. Please try again.", "/services/"+svc.ID+"/apply")
	}
}

/*──────────────────────────── internals ────────────────────────────*/

// load resolves the service and the session draft, redirecting away
// when the service is unknown or closed.
func (h *Handler) load(w http.ResponseWriter, r *http.Request) (models.Service, *wizard.Draft, bool) {
	svc, err := h.State.ServiceByID(chi.URLParam(r, "serviceID"))
	if err != nil {
		http.Redirect(w, r, "/services", http.StatusSeeOther)
		return models.Service{}, nil, false
	}
	if !svc.Status.Acceptable() {
		http.Redirect(w, r, "/services/"+svc.ID, http.StatusSeeOther)
		return models.Service{}, nil, false
	}

	prefill := wizard.PersonalInfo{}
	if u, ok := h.State.User(); ok {
		prefill = wizard.PersonalInfo{
			FullName:   u.FirstName + " " + u.LastName,
			NationalID: u.NationalID,
			Phone:      u.Phone,
			Email:      u.Email,
			Address:    u.Address.Street + ", " + u.Address.City,
		}
	}

	draft := h.Drafts.GetOrCreate(auth.SessionID(r), svc.ID, prefill)
	return svc, draft, true
}

func (h *Handler) redirectToWizard(w http.ResponseWriter, r *http.Request, serviceID string) {
	http.Redirect(w, r, "/services/"+serviceID+"/apply", http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, svc models.Service, draft *wizard.Draft, errMsg string) {
	lang := auth.Lang(r)

	docs := make([]documentRow, 0, len(draft.Documents))
	for i, d := range draft.Documents {
		docs = append(docs, documentRow{Index: i, Name: d.Name, Size: i18n.FormatFileSize(d.Size)})
	}

	methods := make([]methodOption, 0, len(models.PaymentMethods))
	for _, m := range models.PaymentMethods {
		methods = append(methods, methodOption{
			Value:    m,
			Label:    methodLabel(m, lang),
			Selected: m == draft.PaymentMethod,
		})
	}

	data := wizardData{
		BaseVM:         viewdata.NewBaseVM(r, h.State, i18n.Text("Apply", "تقديم طلب", lang), "/services/"+svc.ID),
		ServiceID:      svc.ID,
		ServiceName:    i18n.Text(svc.Name, svc.NameArabic, lang),
		Fees:           i18n.FormatCurrency(svc.Fees, "USD", lang),
		Step:           draft.Step,
		StepTitle:      draft.Step.Title(lang),
		Percent:        progress.Percent(int(draft.Step), int(wizard.LastStep)),
		Personal:       draft.Personal,
		Documents:      docs,
		Required:       svc.RequiredDocuments,
		Methods:        methods,
		AdditionalInfo: draft.AdditionalInfo,
		AgreedToTerms:  draft.AgreedToTerms,
		Error:          errMsg,
	}
	templates.Render(w, r, "apply_wizard", data)
}

func methodLabel(m models.PaymentMethod, lang models.Language) string {
	switch m {
	case models.PayCreditCard:
		return i18n.Text("Credit card", "بطاقة ائتمان", lang)
	case models.PayBankTransfer:
		return i18n.Text("Bank transfer", "تحويل مصرفي", lang)
	default:
		return i18n.Text("Cash at the counter", "نقداً لدى الصندوق", lang)
	}
}
