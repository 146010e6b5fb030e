// internal/app/system/htmlsanitize/htmlsanitize.go
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Plain strips every HTML tag and attribute from citizen-entered
// free text, leaving only the text content. Applied to wizard notes
// and contact messages before they are stored or echoed back.
func Plain(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
