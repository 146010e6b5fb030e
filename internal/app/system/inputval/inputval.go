// internal/app/system/inputval/inputval.go
//
// Form validators for citizen-entered identifiers. Phone and national
// ID rules follow the Lebanese formats: eight subscriber digits with
// an optional +961/961/0 prefix, and an eleven-digit national ID.
package inputval

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe      = regexp.MustCompile(`^(\+961|961|0)?[0-9]{8}$`)
	nationalIDRe = regexp.MustCompile(`^\d{11}$`)
)

// MinPasswordLen is the floor applied at sign-in and registration.
const MinPasswordLen = 6

// Email reports whether s looks like a deliverable address.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Phone reports whether s is a Lebanese phone number. Spaces, dashes,
// and parentheses are stripped before matching.
func Phone(s string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(s)
	return phoneRe.MatchString(cleaned)
}

// NationalID reports whether s is an eleven-digit national ID. Spaces
// are ignored so grouped entry ("123 456 789 01") passes.
func NationalID(s string) bool {
	return nationalIDRe.MatchString(strings.ReplaceAll(s, " ", ""))
}

// CanonicalNationalID strips grouping spaces, returning the bare
// eleven digits stored on records.
func CanonicalNationalID(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// Password checks the minimum length rule.
func Password(s string) error {
	if utf8.RuneCountInString(s) < MinPasswordLen {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}
