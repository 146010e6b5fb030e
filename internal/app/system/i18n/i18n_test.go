// internal/app/system/i18n/i18n_test.go
package i18n

import (
	"strings"
	"testing"
	"time"

	"github.com/hzein/bawaba/internal/domain/models"
)

func TestText(t *testing.T) {
	cases := []struct {
		name string
		en   string
		ar   string
		lang models.Language
		want string
	}{
		{"english selected", "Passport Renewal", "تجديد جواز السفر", models.English, "Passport Renewal"},
		{"arabic selected", "Passport Renewal", "تجديد جواز السفر", models.Arabic, "تجديد جواز السفر"},
		{"arabic missing falls back", "Passport Renewal", "", models.Arabic, "Passport Renewal"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Text(tc.en, tc.ar, tc.lang); got != tc.want {
				t.Errorf("Text() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, time.September, 9, 14, 30, 0, 0, time.UTC)

	if got := FormatDate(d, models.English); got != "Sep 9, 2026" {
		t.Errorf("english date = %q", got)
	}
	ar := FormatDate(d, models.Arabic)
	if !strings.Contains(ar, "أيلول") {
		t.Errorf("arabic date %q missing Levantine month name", ar)
	}
}

func TestFormatDateTimeHasClock(t *testing.T) {
	d := time.Date(2026, time.January, 2, 9, 5, 0, 0, time.UTC)
	if got := FormatDateTime(d, models.English); !strings.HasSuffix(got, "09:05") {
		t.Errorf("datetime = %q, want 24h clock suffix", got)
	}
}

func TestFormatCurrency(t *testing.T) {
	usd := FormatCurrency(50, "USD", models.English)
	if !strings.Contains(usd, "50.00") {
		t.Errorf("USD amount %q missing two fraction digits", usd)
	}
	lbp := FormatCurrency(150000, "LBP", models.English)
	if strings.Contains(lbp, ".") {
		t.Errorf("LBP amount %q should carry no fraction digits", lbp)
	}
	// unknown codes fall back to USD
	if got := FormatCurrency(10, "???", models.English); !strings.Contains(got, "10.00") {
		t.Errorf("fallback amount = %q", got)
	}
}

func TestFormatFileSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}
	for _, tc := range cases {
		if got := FormatFileSize(tc.bytes); got != tc.want {
			t.Errorf("FormatFileSize(%d) = %q, want %q", tc.bytes, got, tc.want)
		}
	}
}

func TestTruncateText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short unchanged", "hello", 10, "hello"},
		{"cut with ellipsis", "hello world", 5, "hello…"},
		{"arabic counted in runes", "مرحبا بالعالم", 6, "مرحبا…"},
		{"zero max", "hello", 0, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateText(tc.in, tc.max); got != tc.want {
				t.Errorf("TruncateText(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
			}
		})
	}
}
