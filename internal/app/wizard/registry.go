// internal/app/wizard/registry.go
package wizard

import "sync"

// Registry holds in-progress drafts keyed by browser session and
// service. Abandoned drafts simply sit in memory until logout or
// restart; there is no eviction beyond that.
type Registry struct {
	mu     sync.Mutex
	drafts map[string]*Draft
}

// NewRegistry returns an empty draft registry.
func NewRegistry() *Registry {
	return &Registry{drafts: make(map[string]*Draft)}
}

func key(sessionID, serviceID string) string {
	return sessionID + "\x00" + serviceID
}

// Get returns the draft for the session/service pair, if any.
func (r *Registry) Get(sessionID, serviceID string) (*Draft, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drafts[key(sessionID, serviceID)]
	return d, ok
}

// GetOrCreate returns the existing draft or starts a new one with the
// given prefill.
func (r *Registry) GetOrCreate(sessionID, serviceID string, prefill PersonalInfo) *Draft {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := key(sessionID, serviceID)
	if d, ok := r.drafts[k]; ok {
		return d
	}
	d := NewDraft(serviceID, prefill)
	r.drafts[k] = d
	return d
}

// Delete drops the draft for the session/service pair.
func (r *Registry) Delete(sessionID, serviceID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drafts, key(sessionID, serviceID))
}

// DeleteSession drops every draft belonging to sessionID. Called on
// logout so a later sign-in starts clean.
func (r *Registry) DeleteSession(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prefix := sessionID + "\x00"
	for k := range r.drafts {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(r.drafts, k)
		}
	}
}
