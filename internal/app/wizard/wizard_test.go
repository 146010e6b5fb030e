// internal/app/wizard/wizard_test.go
package wizard

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/hzein/bawaba/internal/app/state"
	"github.com/hzein/bawaba/internal/domain/models"
)

func testService() models.Service {
	return models.Service{
		ID:         "svc-passport",
		Name:       "Passport Renewal",
		NameArabic: "تجديد جواز السفر",
		Status:     models.ServiceOnline,
		Fees:       50,
		Ministry:   "Ministry of Interior",
		MinistryID: "min-interior",
	}
}

func testUser() models.User {
	return models.User{ID: "u-1", FirstName: "Ahmad", LastName: "Khalil"}
}

func testSubmitter(st *state.Store) *Submitter {
	seq := 0
	return &Submitter{
		Store: st,
		Delay: 0,
		Now: func() time.Time {
			return time.Date(2026, 2, 10, 9, 30, 0, 123, time.UTC)
		},
		NewID: func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		},
	}
}

func reviewReadyDraft() *Draft {
	d := NewDraft("svc-passport", PersonalInfo{FullName: "Ahmad Khalil"})
	d.AttachDocument("passport-scan.pdf", 2048)
	d.Step = StepReview
	d.AgreedToTerms = true
	return d
}

func TestStepClamping(t *testing.T) {
	d := NewDraft("svc-passport", PersonalInfo{})

	d.Previous()
	if d.Step != FirstStep {
		t.Fatalf("Previous at first step moved to %d", d.Step)
	}
	for i := 0; i < 10; i++ {
		d.Next()
	}
	if d.Step != LastStep {
		t.Fatalf("Next past last step moved to %d", d.Step)
	}
	d.Previous()
	if d.Step != StepPayment {
		t.Fatalf("Previous from review = %d, want payment", d.Step)
	}
}

func TestNewDraftDefaults(t *testing.T) {
	d := NewDraft("svc-passport", PersonalInfo{FullName: "Ahmad Khalil"})
	if d.Step != StepPersonalInfo {
		t.Errorf("start step = %d", d.Step)
	}
	if d.PaymentMethod != models.PayCreditCard {
		t.Errorf("default payment = %s", d.PaymentMethod)
	}
	if d.Personal.FullName != "Ahmad Khalil" {
		t.Errorf("prefill lost: %+v", d.Personal)
	}
}

func TestRemoveDocument(t *testing.T) {
	d := NewDraft("svc-passport", PersonalInfo{})
	d.AttachDocument("a.pdf", 1)
	d.AttachDocument("b.pdf", 2)

	if !d.RemoveDocument(0) {
		t.Fatal("in-range index reported out of range")
	}
	if len(d.Documents) != 1 || d.Documents[0].Name != "b.pdf" {
		t.Fatalf("documents after removal: %+v", d.Documents)
	}
	if d.RemoveDocument(5) || d.RemoveDocument(-1) {
		t.Fatal("out-of-range index reported removed")
	}
}

func TestSubmitBuildsApplicationAndNotification(t *testing.T) {
	st := state.New()
	st.Login(testUser())
	sub := testSubmitter(st)
	d := reviewReadyDraft()
	d.AdditionalInfo = "<b>urgent</b> travel in March"

	app, err := sub.Submit(context.Background(), d, testService(), testUser())
	if err != nil {
		t.Fatal(err)
	}

	if app.Status != models.ApplicationSubmitted {
		t.Errorf("status = %s", app.Status)
	}
	if app.CurrentStep != 1 || app.TotalSteps != 3 {
		t.Errorf("pipeline position = %d/%d", app.CurrentStep, app.TotalSteps)
	}
	if app.Fees != 50 || app.IsPaid {
		t.Errorf("fees = %v paid = %v", app.Fees, app.IsPaid)
	}
	if want := app.SubmissionDate.AddDate(0, 0, 7); !app.EstimatedCompletionDate.Equal(want) {
		t.Errorf("estimated completion = %v, want %v", app.EstimatedCompletionDate, want)
	}
	if app.Notes != "urgent travel in March" {
		t.Errorf("notes not sanitized: %q", app.Notes)
	}

	if len(app.Documents) != 1 {
		t.Fatalf("documents = %d", len(app.Documents))
	}
	doc := app.Documents[0]
	if doc.Type != models.DocumentOther || !doc.IsRequired || doc.IsVerified {
		t.Errorf("document flags: %+v", doc)
	}

	stored := st.ApplicationsFor("u-1")
	if len(stored) != 1 || stored[0].ID != app.ID {
		t.Fatalf("application not stored: %+v", stored)
	}

	notes := st.NotificationsFor("u-1")
	if len(notes) != 1 {
		t.Fatalf("notifications = %d", len(notes))
	}
	n := notes[0]
	if n.Type != models.NotificationSuccess || n.ActionURL != "/dashboard/applications" {
		t.Errorf("notification: %+v", n)
	}
	if n.ApplicationID != app.ID {
		t.Errorf("notification not linked to application: %q", n.ApplicationID)
	}
}

func TestTrackingNumberFormat(t *testing.T) {
	now := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
	got := TrackingNumber("Ministry of Interior", now)

	re := regexp.MustCompile(`^LB-MINISTRYOFINTERIOR-\d{6}$`)
	if !re.MatchString(got) {
		t.Fatalf("tracking number %q does not match LB-<CODE>-<6 digits>", got)
	}
	ms := fmt.Sprintf("%d", now.UnixMilli())
	if want := ms[len(ms)-6:]; got[len(got)-6:] != want {
		t.Errorf("suffix = %s, want %s", got[len(got)-6:], want)
	}
}

func TestSubmitGuards(t *testing.T) {
	st := state.New()
	svc := testService()
	user := testUser()

	t.Run("not at review", func(t *testing.T) {
		d := NewDraft(svc.ID, PersonalInfo{})
		if _, err := testSubmitter(st).Submit(context.Background(), d, svc, user); err != ErrNotAtReview {
			t.Errorf("err = %v, want ErrNotAtReview", err)
		}
	})

	t.Run("terms not accepted", func(t *testing.T) {
		d := reviewReadyDraft()
		d.AgreedToTerms = false
		if _, err := testSubmitter(st).Submit(context.Background(), d, svc, user); err != ErrTermsNotAccepted {
			t.Errorf("err = %v, want ErrTermsNotAccepted", err)
		}
	})

	t.Run("service closed", func(t *testing.T) {
		closed := svc
		closed.Status = models.ServiceMaintenance
		if _, err := testSubmitter(st).Submit(context.Background(), reviewReadyDraft(), closed, user); err != ErrServiceClosed {
			t.Errorf("err = %v, want ErrServiceClosed", err)
		}
	})

	t.Run("double submit", func(t *testing.T) {
		st := state.New()
		sub := testSubmitter(st)
		d := reviewReadyDraft()
		if _, err := sub.Submit(context.Background(), d, svc, user); err != nil {
			t.Fatal(err)
		}
		if _, err := sub.Submit(context.Background(), d, svc, user); err != ErrAlreadySubmitted {
			t.Errorf("err = %v, want ErrAlreadySubmitted", err)
		}
	})

	t.Run("duplicate open application", func(t *testing.T) {
		st := state.New()
		sub := testSubmitter(st)
		if _, err := sub.Submit(context.Background(), reviewReadyDraft(), svc, user); err != nil {
			t.Fatal(err)
		}
		if _, err := sub.Submit(context.Background(), reviewReadyDraft(), svc, user); err != ErrDuplicate {
			t.Errorf("err = %v, want ErrDuplicate", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		st := state.New()
		sub := testSubmitter(st)
		sub.Delay = time.Minute
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := sub.Submit(ctx, reviewReadyDraft(), svc, user); err != context.Canceled {
			t.Errorf("err = %v, want context.Canceled", err)
		}
		if len(st.Applications()) != 0 {
			t.Error("cancelled submit still stored an application")
		}
	})
}

func TestSubmitConcurrentDoubleClick(t *testing.T) {
	st := state.New()
	svc := testService()
	user := testUser()

	sub := testSubmitter(st)
	sub.Delay = 50 * time.Millisecond
	d := reviewReadyDraft()

	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := sub.Submit(context.Background(), d, svc, user)
			errs <- err
		}()
	}

	var ok, rejected int
	for i := 0; i < 2; i++ {
		switch err := <-errs; err {
		case nil:
			ok++
		case ErrAlreadySubmitted:
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if ok != 1 || rejected != 1 {
		t.Fatalf("submissions = %d, rejections = %d, want 1 and 1", ok, rejected)
	}
	if apps := st.ApplicationsFor(user.ID); len(apps) != 1 {
		t.Fatalf("applications stored = %d, want 1", len(apps))
	}
	if notes := st.NotificationsFor(user.ID); len(notes) != 1 {
		t.Fatalf("notifications stored = %d, want 1", len(notes))
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	d := r.GetOrCreate("sess-1", "svc-1", PersonalInfo{FullName: "Ahmad"})
	again := r.GetOrCreate("sess-1", "svc-1", PersonalInfo{FullName: "someone else"})
	if d != again {
		t.Fatal("GetOrCreate created a second draft for the same key")
	}

	other := r.GetOrCreate("sess-2", "svc-1", PersonalInfo{})
	if other == d {
		t.Fatal("drafts shared across sessions")
	}

	r.Delete("sess-1", "svc-1")
	if _, ok := r.Get("sess-1", "svc-1"); ok {
		t.Fatal("draft survived Delete")
	}

	r.GetOrCreate("sess-2", "svc-9", PersonalInfo{})
	r.DeleteSession("sess-2")
	if _, ok := r.Get("sess-2", "svc-1"); ok {
		t.Fatal("draft survived DeleteSession")
	}
	if _, ok := r.Get("sess-2", "svc-9"); ok {
		t.Fatal("second draft survived DeleteSession")
	}
}
