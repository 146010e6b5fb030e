// internal/app/wizard/draft.go
package wizard

import (
	"sync"

	"github.com/hzein/bawaba/internal/domain/models"
)

// Step is a wizard page. Navigation is strictly linear: Next and
// Previous move one step and clamp at the ends.
type Step int

const (
	StepPersonalInfo Step = iota + 1
	StepDocuments
	StepPayment
	StepReview
)

const (
	FirstStep = StepPersonalInfo
	LastStep  = StepReview
)

// Title returns the step heading in the requested language.
func (s Step) Title(lang models.Language) string {
	en, ar := "", ""
	switch s {
	case StepPersonalInfo:
		en, ar = "Personal Information", "المعلومات الشخصية"
	case StepDocuments:
		en, ar = "Required Documents", "المستندات المطلوبة"
	case StepPayment:
		en, ar = "Payment Method", "طريقة الدفع"
	case StepReview:
		en, ar = "Review & Submit", "المراجعة والتقديم"
	}
	if lang.IsArabic() {
		return ar
	}
	return en
}

// PersonalInfo is the citizen-editable block collected on step one,
// prefilled from the signed-in user's record.
type PersonalInfo struct {
	FullName   string
	NationalID string
	Phone      string
	Email      string
	Address    string
}

// DraftDocument is a simulated upload: only the file's metadata is
// retained, never its content.
type DraftDocument struct {
	Name string
	Size int64
}

// Draft is one citizen's in-progress application for a service. It
// lives server-side until submission succeeds or the citizen walks
// away. Step edits arrive one request at a time from a single
// browser; Submit holds mu across its guards and store writes so
// concurrent review POSTs (a double-click) cannot both consume the
// draft.
type Draft struct {
	ServiceID      string
	Step           Step
	Personal       PersonalInfo
	Documents      []DraftDocument
	AdditionalInfo string
	PaymentMethod  models.PaymentMethod
	AgreedToTerms  bool

	mu        sync.Mutex
	submitted bool
}

// NewDraft starts a draft at the first step with the default payment
// method selected and the personal block prefilled.
func NewDraft(serviceID string, prefill PersonalInfo) *Draft {
	return &Draft{
		ServiceID:     serviceID,
		Step:          FirstStep,
		Personal:      prefill,
		PaymentMethod: models.PayCreditCard,
	}
}

// Next advances one step, clamping at the review step.
func (d *Draft) Next() {
	if d.Step < LastStep {
		d.Step++
	}
}

// Previous moves back one step, clamping at the first step.
func (d *Draft) Previous() {
	if d.Step > FirstStep {
		d.Step--
	}
}

// AttachDocument records a simulated upload.
func (d *Draft) AttachDocument(name string, size int64) {
	d.Documents = append(d.Documents, DraftDocument{Name: name, Size: size})
}

// RemoveDocument drops the attachment at index i, reporting whether
// the index was in range.
func (d *Draft) RemoveDocument(i int) bool {
	if i < 0 || i >= len(d.Documents) {
		return false
	}
	d.Documents = append(d.Documents[:i], d.Documents[i+1:]...)
	return true
}

// Submitted reports whether Submit already consumed this draft.
func (d *Draft) Submitted() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.submitted
}
