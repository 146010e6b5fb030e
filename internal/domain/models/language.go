// internal/domain/models/language.go
package models

// Language identifies one of the two portal languages and the text
// direction pages should render with.
type Language struct {
	Code      string `json:"code"`      // "en" | "ar"
	Name      string `json:"name"`      // native display name
	Direction string `json:"direction"` // "ltr" | "rtl"
}

// The two supported languages. Every bilingual record carries both
// scripts, so there is no fallback path for a missing translation.
var (
	English = Language{Code: "en", Name: "English", Direction: "ltr"}
	Arabic  = Language{Code: "ar", Name: "العربية", Direction: "rtl"}
)

// LanguageByCode returns the language for code, defaulting to English
// for anything that is not "ar".
func LanguageByCode(code string) Language {
	if code == Arabic.Code {
		return Arabic
	}
	return English
}

// Other returns the language the toggle switches to.
func (l Language) Other() Language {
	if l.Code == Arabic.Code {
		return English
	}
	return Arabic
}

// IsArabic reports whether l selects the Arabic script.
func (l Language) IsArabic() bool { return l.Code == Arabic.Code }
