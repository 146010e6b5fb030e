// internal/app/system/search/search.go
package search

import (
	"strings"

	"github.com/dalemusser/waffle/pantry/text"
)

// Matches reports whether the folded term occurs in any of the
// fields. Folding lowercases and strips diacritics, so "Beyrouth"
// style accents and Arabic harakat do not defeat a match.
func Matches(term string, fields ...string) bool {
	folded := text.Fold(strings.TrimSpace(term))
	if folded == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(text.Fold(f), folded) {
			return true
		}
	}
	return false
}

// Filter returns the items whose fields contain term. An empty or
// whitespace-only term returns items unchanged.
func Filter[T any](items []T, term string, fields func(T) []string) []T {
	if strings.TrimSpace(term) == "" {
		return items
	}
	var out []T
	for _, it := range items {
		if Matches(term, fields(it)...) {
			out = append(out, it)
		}
	}
	return out
}
