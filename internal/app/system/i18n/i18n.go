// internal/app/system/i18n/i18n.go
//
// Bilingual text selection plus locale-aware date, currency, and size
// formatting. Arabic output uses Levantine month names and
// Arabic-Indic digits, matching how Lebanese government sites render
// dates and amounts.
package i18n

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/hzein/bawaba/internal/domain/models"
)

var (
	tagEnglish = language.MustParse("en-US")
	tagArabic  = language.MustParse("ar-LB")
)

// Tag returns the BCP 47 tag for lang.
func Tag(lang models.Language) language.Tag {
	if lang.IsArabic() {
		return tagArabic
	}
	return tagEnglish
}

// Text picks the variant for lang. Records always carry both scripts,
// but an empty Arabic field falls back to English rather than
// rendering a blank.
func Text(en, ar string, lang models.Language) string {
	if lang.IsArabic() && ar != "" {
		return ar
	}
	return en
}

// Levantine month names as used in Lebanon (ar-LB), January first.
var arabicMonths = [12]string{
	"كانون الثاني", "شباط", "آذار", "نيسان", "أيار", "حزيران",
	"تموز", "آب", "أيلول", "تشرين الأول", "تشرين الثاني", "كانون الأول",
}

// FormatDate renders t as a medium date for lang.
func FormatDate(t time.Time, lang models.Language) string {
	if lang.IsArabic() {
		p := message.NewPrinter(tagArabic)
		return p.Sprintf("%v %s %v",
			number.Decimal(t.Day()), arabicMonths[t.Month()-1], number.Decimal(t.Year()))
	}
	return t.Format("Jan 2, 2006")
}

// FormatDateTime renders t as a medium date with a 24-hour clock.
func FormatDateTime(t time.Time, lang models.Language) string {
	return FormatDate(t, lang) + " " + t.Format("15:04")
}

// FormatCurrency renders an amount in the given ISO 4217 currency.
// LBP amounts carry no fraction digits; everything else uses two.
// Unknown codes fall back to USD.
func FormatCurrency(amount float64, code string, lang models.Language) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}
	scale := 2
	if unit == currency.MustParseISO("LBP") {
		scale = 0
	}
	p := message.NewPrinter(Tag(lang))
	return p.Sprintf("%v %v", currency.Symbol(unit), number.Decimal(amount, number.Scale(scale)))
}

// FormatFileSize renders a byte count with a binary unit, one decimal
// place above kilobytes.
func FormatFileSize(bytes int64) string {
	const unit = 1024
	switch {
	case bytes < unit:
		return fmt.Sprintf("%d B", bytes)
	case bytes < unit*unit:
		return fmt.Sprintf("%.1f KB", float64(bytes)/unit)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(unit*unit))
	}
}

// TruncateText shortens s to at most max runes, appending an ellipsis
// when anything was cut.
func TruncateText(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimRight(string(runes[:max]), " ") + "…"
}
