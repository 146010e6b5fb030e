// Package formutil provides helpers for form re-rendering with validation errors.
//
// When a form submission fails validation, the form is re-rendered with
// the citizen's previously entered values echoed back and an error
// message explaining what went wrong. Embed Base in the form's data
// struct and populate it with SetBase.
package formutil

import (
	"html/template"
	"net/http"

	"github.com/hzein/bawaba/internal/app/state"
	"github.com/hzein/bawaba/internal/app/system/viewdata"
)

// Base contains common fields for form pages that can be embedded in form data structs.
type Base struct {
	viewdata.BaseVM
	Error template.HTML
}

// SetBase populates the common Base fields from the request context.
func SetBase(b *Base, r *http.Request, st *state.Store, title, backDefault string) {
	b.BaseVM = viewdata.NewBaseVM(r, st, title, backDefault)
}

// SetError sets the error message on a Base struct.
func (b *Base) SetError(msg string) {
	b.Error = template.HTML(msg)
}
