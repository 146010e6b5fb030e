// internal/app/resources/resources.go
package resources

import (
	"embed"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var layoutFS embed.FS

var once sync.Once

// LoadSharedTemplates registers the page_head/page_header/page_footer
// partials every feature template pulls in. Safe to call more than
// once; only the first call registers.
func LoadSharedTemplates() {
	once.Do(func() {
		templates.Register(templates.Set{
			Name:     "layout",
			FS:       layoutFS,
			Patterns: []string{"templates/*.gohtml"},
		})
	})
}
