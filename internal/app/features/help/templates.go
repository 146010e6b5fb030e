// internal/app/features/help/templates.go
package help

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "help",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
