// internal/app/wizard/submit.go
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hzein/bawaba/internal/app/state"
	"github.com/hzein/bawaba/internal/app/system/htmlsanitize"
	"github.com/hzein/bawaba/internal/app/system/latency"
	"github.com/hzein/bawaba/internal/domain/models"
)

// Back-office pipeline shape for new submissions: received, in
// review, decision.
const (
	initialPipelineStep = 1
	pipelineTotalSteps  = 3
)

// processingDays is the default estimate offered to the citizen.
const processingDays = 7

var (
	ErrNotAtReview      = errors.New("wizard: draft is not at the review step")
	ErrTermsNotAccepted = errors.New("wizard: terms not accepted")
	ErrAlreadySubmitted = errors.New("wizard: draft already submitted")
	ErrServiceClosed    = errors.New("wizard: service is not accepting applications")
	ErrDuplicate        = errors.New("wizard: an open application for this service already exists")
)

// Submitter turns a completed draft into a stored application plus a
// success notification, in one pass. The clock and ID source are
// injectable for tests.
type Submitter struct {
	Store *state.Store
	Delay time.Duration

	Now   func() time.Time
	NewID func() string
}

// NewSubmitter returns a Submitter with the real clock, UUID IDs, and
// the configured submission latency.
func NewSubmitter(st *state.Store) *Submitter {
	return &Submitter{
		Store: st,
		Delay: latency.Submit(),
		Now:   time.Now,
		NewID: uuid.NewString,
	}
}

// Submit validates the draft, simulates the gateway round trip, and
// records the application and its notification in the store. The
// draft is consumed on success; a failed submission leaves it at the
// review step so the citizen can retry.
func (s *Submitter) Submit(ctx context.Context, d *Draft, svc models.Service, user models.User) (models.Application, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch {
	case d.submitted:
		return models.Application{}, ErrAlreadySubmitted
	case d.Step != StepReview:
		return models.Application{}, ErrNotAtReview
	case !d.AgreedToTerms:
		return models.Application{}, ErrTermsNotAccepted
	case !svc.Status.Acceptable():
		return models.Application{}, ErrServiceClosed
	}
	if s.Store.HasApplicationForService(user.ID, svc.ID) {
		return models.Application{}, ErrDuplicate
	}

	if err := latency.Sleep(ctx, s.Delay); err != nil {
		return models.Application{}, err
	}

	now := s.Now()
	app := models.Application{
		ID:                      s.NewID(),
		ServiceID:               svc.ID,
		UserID:                  user.ID,
		Status:                  models.ApplicationSubmitted,
		SubmissionDate:          now,
		EstimatedCompletionDate: now.AddDate(0, 0, processingDays),
		Documents:               s.buildDocuments(d, now),
		CurrentStep:             initialPipelineStep,
		TotalSteps:              pipelineTotalSteps,
		Fees:                    svc.Fees,
		IsPaid:                  false,
		PaymentMethod:           d.PaymentMethod,
		TrackingNumber:          TrackingNumber(svc.Ministry, now),
		Notes:                   htmlsanitize.Plain(d.AdditionalInfo),
	}

	s.Store.AddApplication(app)
	s.Store.AddNotification(models.Notification{
		ID:            s.NewID(),
		UserID:        user.ID,
		Title:         "Application Submitted Successfully",
		TitleArabic:   "تم تقديم الطلب بنجاح",
		Message:       fmt.Sprintf("Your application for %s was received. Tracking number: %s", svc.Name, app.TrackingNumber),
		MessageArabic: fmt.Sprintf("تم استلام طلبك لخدمة %s. رقم التتبع: %s", svc.NameArabic, app.TrackingNumber),
		Type:          models.NotificationSuccess,
		CreatedAt:     now,
		ActionURL:     "/dashboard/applications",
		ApplicationID: app.ID,
	})

	d.submitted = true
	return app, nil
}

func (s *Submitter) buildDocuments(d *Draft, now time.Time) []models.Document {
	docs := make([]models.Document, 0, len(d.Documents))
	for _, dd := range d.Documents {
		docs = append(docs, models.Document{
			ID:         s.NewID(),
			Name:       dd.Name,
			Type:       models.DocumentOther,
			Size:       dd.Size,
			UploadDate: now,
			IsRequired: true,
			IsVerified: false,
		})
	}
	return docs
}

// TrackingNumber derives the citizen-facing reference from the
// ministry name and submission time:
//
//	LB-<MINISTRY, uppercased, spaces removed>-<last six digits of the Unix millisecond timestamp>
func TrackingNumber(ministry string, now time.Time) string {
	code := strings.ToUpper(strings.ReplaceAll(ministry, " ", ""))
	ms := fmt.Sprintf("%d", now.UnixMilli())
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return fmt.Sprintf("LB-%s-%s", code, ms)
}
