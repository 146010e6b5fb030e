// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"

	"github.com/hzein/bawaba/internal/app/state"
	"github.com/hzein/bawaba/internal/app/system/auth"
	"github.com/hzein/bawaba/internal/domain/models"
)

// SiteName pairs are fixed; the portal brand is not configurable.
const (
	SiteName       = "Bawaba"
	SiteNameArabic = "بوابة"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, st, "Page Title", "/default-back"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	// Site identity, in the page's language
	SiteName string

	// User context (from auth middleware)
	IsLoggedIn bool
	UserName   string

	// Language context
	Lang        models.Language
	Dir         string // "ltr" | "rtl"
	OtherLang   models.Language
	UnreadCount int

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// CSRF protection
	CSRFToken string
}

// NewBaseVM creates a fully populated BaseVM for a page.
//
// Parameters:
//   - r: the HTTP request
//   - st: the application state store (can be nil; unread badge stays 0)
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(r *http.Request, st *state.Store, title, backDefault string) BaseVM {
	lang := auth.Lang(r)

	name := SiteName
	if lang.IsArabic() {
		name = SiteNameArabic
	}

	vm := BaseVM{
		SiteName:    name,
		Lang:        lang,
		Dir:         lang.Direction,
		OtherLang:   lang.Other(),
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}

	if u, ok := auth.CurrentUser(r); ok {
		vm.IsLoggedIn = true
		vm.UserName = u.Name
		if lang.IsArabic() && strings.TrimSpace(u.NameArabic) != "" {
			vm.UserName = u.NameArabic
		}
		if st != nil {
			vm.UnreadCount = st.UnreadCount(u.ID)
		}
	}

	return vm
}
