// internal/app/state/store_test.go
package state

import (
	"sync"
	"testing"
	"time"

	"github.com/hzein/bawaba/internal/domain/models"
)

func testUser() models.User {
	return models.User{
		ID:        "u-1",
		FirstName: "Ahmad",
		LastName:  "Khalil",
		Email:     "ahmad.khalil@example.com",
	}
}

func TestLoginIsAtomic(t *testing.T) {
	s := New()
	s.SetLoading(true)

	before := s.Revision()
	s.Login(testUser())

	if got := s.Revision(); got != before+1 {
		t.Fatalf("Login bumped revision by %d, want 1", got-before)
	}
	if !s.IsAuthenticated() {
		t.Fatal("expected authenticated after Login")
	}
	if s.Loading() {
		t.Fatal("Login must clear the loading flag in the same transition")
	}
	if u, ok := s.User(); !ok || u.ID != "u-1" {
		t.Fatalf("User() = %+v, %v", u, ok)
	}
}

func TestLogoutClearsOnlyCitizenState(t *testing.T) {
	s := New()
	s.SetLanguage(models.Arabic)
	s.SetServices([]models.Service{{ID: "svc-1"}})
	s.SetMinistries([]models.Ministry{{ID: "min-1"}})
	s.Login(testUser())
	s.AddApplication(models.Application{ID: "app-1", UserID: "u-1"})
	s.AddNotification(models.Notification{ID: "not-1", UserID: "u-1"})

	s.Logout()

	if s.IsAuthenticated() {
		t.Fatal("still authenticated after Logout")
	}
	if got := len(s.Applications()); got != 0 {
		t.Errorf("applications after logout = %d, want 0", got)
	}
	if got := len(s.Notifications()); got != 0 {
		t.Errorf("notifications after logout = %d, want 0", got)
	}
	if got := s.Language(); got != models.Arabic {
		t.Errorf("language after logout = %v, want Arabic", got)
	}
	if got := len(s.Services()); got != 1 {
		t.Errorf("services after logout = %d, want 1", got)
	}
	if got := len(s.Ministries()); got != 1 {
		t.Errorf("ministries after logout = %d, want 1", got)
	}
}

func TestAddNotificationPrepends(t *testing.T) {
	s := New()
	s.AddNotification(models.Notification{ID: "older", UserID: "u-1"})
	s.AddNotification(models.Notification{ID: "newer", UserID: "u-1"})

	got := s.Notifications()
	if len(got) != 2 || got[0].ID != "newer" || got[1].ID != "older" {
		t.Fatalf("order = %v, want newest first", ids(got))
	}
}

func ids(ns []models.Notification) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.ID
	}
	return out
}

func TestMarkNotificationAsRead(t *testing.T) {
	s := New()
	s.AddNotification(models.Notification{ID: "not-1", UserID: "u-1"})

	if !s.MarkNotificationAsRead("not-1") {
		t.Fatal("known ID reported not found")
	}
	if s.UnreadCount("u-1") != 0 {
		t.Fatal("notification still counted unread")
	}
	// idempotent
	if !s.MarkNotificationAsRead("not-1") {
		t.Fatal("second mark of a read notification reported not found")
	}
	if s.MarkNotificationAsRead("missing") {
		t.Fatal("unknown ID reported found")
	}
}

func TestUpdateApplicationMerges(t *testing.T) {
	s := New()
	s.AddApplication(models.Application{
		ID:          "app-1",
		UserID:      "u-1",
		Status:      models.ApplicationSubmitted,
		CurrentStep: 1,
		TotalSteps:  3,
		Notes:       "original notes",
	})

	status := models.ApplicationUnderReview
	step := 2
	if !s.UpdateApplication("app-1", ApplicationUpdate{Status: &status, CurrentStep: &step}) {
		t.Fatal("known ID reported not found")
	}

	got, err := s.ApplicationByID("app-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != models.ApplicationUnderReview || got.CurrentStep != 2 {
		t.Errorf("merged fields not applied: %+v", got)
	}
	if got.Notes != "original notes" {
		t.Errorf("untouched field changed: %q", got.Notes)
	}

	if s.UpdateApplication("missing", ApplicationUpdate{Status: &status}) {
		t.Fatal("unknown ID reported found")
	}
}

func TestApplicationsForFiltersByUser(t *testing.T) {
	s := New()
	s.AddApplication(models.Application{ID: "a", UserID: "u-1"})
	s.AddApplication(models.Application{ID: "b", UserID: "u-2"})
	s.AddApplication(models.Application{ID: "c", UserID: "u-1"})

	got := s.ApplicationsFor("u-1")
	if len(got) != 2 || got[0].ID != "c" || got[1].ID != "a" {
		t.Fatalf("ApplicationsFor returned wrong set: %+v", got)
	}
}

func TestHasApplicationForService(t *testing.T) {
	s := New()
	s.AddApplication(models.Application{
		ID: "a", UserID: "u-1", ServiceID: "svc-1",
		Status: models.ApplicationSubmitted,
	})
	s.AddApplication(models.Application{
		ID: "b", UserID: "u-1", ServiceID: "svc-2",
		Status: models.ApplicationCompleted,
	})

	cases := []struct {
		name      string
		userID    string
		serviceID string
		want      bool
	}{
		{"open application", "u-1", "svc-1", true},
		{"terminal application", "u-1", "svc-2", false},
		{"other user", "u-2", "svc-1", false},
		{"unknown service", "u-1", "svc-9", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.HasApplicationForService(tc.userID, tc.serviceID); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSelectorsReturnCopies(t *testing.T) {
	s := New()
	s.SetServices([]models.Service{{ID: "svc-1", Name: "Passport Renewal"}})

	got := s.Services()
	got[0].Name = "mutated"

	fresh := s.Services()
	if fresh[0].Name != "Passport Renewal" {
		t.Fatal("mutating a returned slice leaked into the store")
	}
}

func TestRegisterAccount(t *testing.T) {
	s := New()
	u := testUser()
	if err := s.RegisterAccount(u); err != nil {
		t.Fatal(err)
	}
	if err := s.RegisterAccount(u); err == nil {
		t.Fatal("duplicate email accepted")
	}

	got, err := s.AccountByEmail("  Ahmad.Khalil@Example.com ")
	if err != nil {
		t.Fatalf("case-folded lookup failed: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("wrong account: %+v", got)
	}
	if _, err := s.AccountByEmail("nobody@example.com"); err != ErrNotFound {
		t.Errorf("unknown email: err = %v, want ErrNotFound", err)
	}
}

func TestUpdateApplicationCompletionDate(t *testing.T) {
	s := New()
	s.AddApplication(models.Application{ID: "app-1", UserID: "u-1"})

	done := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if !s.UpdateApplication("app-1", ApplicationUpdate{CompletionDate: &done}) {
		t.Fatal("update failed")
	}
	got, _ := s.ApplicationByID("app-1")
	if got.CompletionDate == nil || !got.CompletionDate.Equal(done) {
		t.Fatalf("completion date = %v, want %v", got.CompletionDate, done)
	}
}

func TestConcurrentMutators(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.AddNotification(models.Notification{ID: "n", UserID: "u-1"})
		}()
		go func() {
			defer wg.Done()
			_ = s.Notifications()
			_ = s.UnreadCount("u-1")
		}()
	}
	wg.Wait()

	if got := len(s.Notifications()); got != 50 {
		t.Fatalf("notifications = %d, want 50", got)
	}
}
