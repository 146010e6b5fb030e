// internal/app/state/store.go
package state

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/hzein/bawaba/internal/domain/models"
)

// ErrNotFound is returned by lookups for IDs the store has never seen.
var ErrNotFound = errors.New("state: not found")

// Store is the process-wide application state. It mirrors the portal's
// client state container: a signed-in citizen, the selected language,
// the seeded service/ministry catalog, and per-citizen applications
// and notifications. Everything lives in memory; only the session
// cookie survives a restart.
//
// All methods are safe for concurrent use. Mutators take the write
// lock for their whole body, so multi-field transitions such as Login
// and Logout are observed atomically by readers.
type Store struct {
	mu  sync.RWMutex
	rev uint64

	user     *models.User
	language models.Language
	loading  bool

	services   []models.Service
	ministries []models.Ministry

	applications  []models.Application
	notifications []models.Notification

	// registered accounts, keyed by folded email
	accounts map[string]models.User
}

// New returns an empty store with English selected.
func New() *Store {
	return &Store{
		language: models.English,
		accounts: make(map[string]models.User),
	}
}

/*──────────────────────────── session ────────────────────────────*/

// Login installs u as the signed-in citizen and clears the loading
// flag in the same transition.
func (s *Store) Login(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := u
	s.user = &cp
	s.loading = false
	s.rev++
}

// Logout signs the citizen out and drops their applications and
// notifications. Language and the seeded catalog survive.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.applications = nil
	s.notifications = nil
	s.rev++
}

// SetUser replaces the signed-in citizen's record, or clears it when
// u is nil. Authentication state follows the user pointer.
func (s *Store) SetUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		s.user = nil
	} else {
		cp := *u
		s.user = &cp
	}
	s.rev++
}

// User returns a copy of the signed-in citizen, if any.
func (s *Store) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether a citizen is signed in.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// SetLanguage selects the portal language.
func (s *Store) SetLanguage(lang models.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
	s.rev++
}

// Language returns the selected portal language.
func (s *Store) Language() models.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// SetLoading flips the global busy flag shown during simulated calls.
func (s *Store) SetLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
	s.rev++
}

// Loading reports the global busy flag.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

/*──────────────────────────── catalog ────────────────────────────*/

// SetServices replaces the service catalog.
func (s *Store) SetServices(svcs []models.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services = append([]models.Service(nil), svcs...)
	s.rev++
}

// Services returns a copy of the service catalog.
func (s *Store) Services() []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Service(nil), s.services...)
}

// ServiceByID looks a service up by ID.
func (s *Store) ServiceByID(id string) (models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, svc := range s.services {
		if svc.ID == id {
			return svc, nil
		}
	}
	return models.Service{}, ErrNotFound
}

// SetMinistries replaces the ministry directory.
func (s *Store) SetMinistries(ms []models.Ministry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ministries = append([]models.Ministry(nil), ms...)
	s.rev++
}

// Ministries returns a copy of the ministry directory.
func (s *Store) Ministries() []models.Ministry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Ministry(nil), s.ministries...)
}

// MinistryByID looks a ministry up by ID.
func (s *Store) MinistryByID(id string) (models.Ministry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.ministries {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Ministry{}, ErrNotFound
}

/*───────────────────────── applications ──────────────────────────*/

// SetApplications replaces the full application list. Seeding only;
// request handlers go through AddApplication and UpdateApplication.
func (s *Store) SetApplications(apps []models.Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications = append([]models.Application(nil), apps...)
	s.rev++
}

// AddApplication prepends app so the newest submission lists first.
func (s *Store) AddApplication(app models.Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications = append([]models.Application{app}, s.applications...)
	s.rev++
}

// ApplicationUpdate carries the fields UpdateApplication may change.
// Nil pointers leave the current value untouched.
type ApplicationUpdate struct {
	Status         *models.ApplicationStatus
	CurrentStep    *int
	IsPaid         *bool
	Notes          *string
	CompletionDate *time.Time
}

// UpdateApplication merges upd into the application with the given ID.
// It reports whether the ID matched; an unknown ID changes nothing.
func (s *Store) UpdateApplication(id string, upd ApplicationUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.applications {
		if s.applications[i].ID != id {
			continue
		}
		if upd.Status != nil {
			s.applications[i].Status = *upd.Status
		}
		if upd.CurrentStep != nil {
			s.applications[i].CurrentStep = *upd.CurrentStep
		}
		if upd.IsPaid != nil {
			s.applications[i].IsPaid = *upd.IsPaid
		}
		if upd.Notes != nil {
			s.applications[i].Notes = *upd.Notes
		}
		if upd.CompletionDate != nil {
			d := *upd.CompletionDate
			s.applications[i].CompletionDate = &d
		}
		s.rev++
		return true
	}
	return false
}

// Applications returns a copy of all applications, newest first.
func (s *Store) Applications() []models.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Application(nil), s.applications...)
}

// ApplicationsFor returns the applications belonging to userID,
// newest first.
func (s *Store) ApplicationsFor(userID string) []models.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Application
	for _, a := range s.applications {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out
}

// ApplicationByID looks an application up by ID.
func (s *Store) ApplicationByID(id string) (models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.applications {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Application{}, ErrNotFound
}

// HasApplicationForService reports whether userID already has a
// non-terminal application for serviceID.
func (s *Store) HasApplicationForService(userID, serviceID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.applications {
		if a.UserID == userID && a.ServiceID == serviceID && !a.Status.Terminal() {
			return true
		}
	}
	return false
}

/*───────────────────────── notifications ─────────────────────────*/

// AddNotification prepends n so the newest message lists first.
// No de-duplication: callers own ID uniqueness.
func (s *Store) AddNotification(n models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append([]models.Notification{n}, s.notifications...)
	s.rev++
}

// MarkNotificationAsRead flags the notification read. It reports
// whether the ID matched; marking an already-read notification again
// is a no-op that still reports true.
func (s *Store) MarkNotificationAsRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].IsRead = true
			s.rev++
			return true
		}
	}
	return false
}

// Notifications returns a copy of all notifications, newest first.
func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Notification(nil), s.notifications...)
}

// NotificationsFor returns the notifications addressed to userID,
// newest first.
func (s *Store) NotificationsFor(userID string) []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// UnreadCount returns how many of userID's notifications are unread.
func (s *Store) UnreadCount(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, n := range s.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count
}

/*────────────────────────── accounts ─────────────────────────────*/

// RegisterAccount records a self-registered citizen so later sign-ins
// with the same email verify against their stored password hash.
func (s *Store) RegisterAccount(u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := foldEmail(u.Email)
	if _, ok := s.accounts[key]; ok {
		return errors.New("state: email already registered")
	}
	s.accounts[key] = u
	s.rev++
	return nil
}

// AccountByEmail looks a registered citizen up by email.
func (s *Store) AccountByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.accounts[foldEmail(email)]; ok {
		return u, nil
	}
	return models.User{}, ErrNotFound
}

func foldEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Revision returns a counter bumped by every mutation. Tests use it
// to observe that compound transitions land as a single step.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rev
}
