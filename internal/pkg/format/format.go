// Package format renders numbers and text the way the dashboard shows them (pt-BR).
package format

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ougirez/concursos/internal/pkg/constants"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Int formats n with pt-BR digit grouping: 1234567 -> "1.234.567".
func Int(n int64) string {
	return printer.Sprintf("%d", n)
}

// IntPtr is Int with the placeholder for nil.
func IntPtr(n *int64) string {
	if n == nil {
		return constants.Placeholder
	}
	return Int(*n)
}

// Percent returns part/total*100 with one decimal place, "0.0" when total is zero.
func Percent(part, total int64) string {
	if total == 0 {
		return decimal.Zero.StringFixed(1)
	}
	return decimal.NewFromInt(part).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(total)).
		StringFixed(1)
}

// Text returns the value or the placeholder when it is nil or blank.
func Text(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return constants.Placeholder
	}
	return *s
}

// Truncate cuts s to max runes, appending "..." when something was cut.
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max]) + "..."
}

// Fold lower-cases s and strips accents so "Órgão" matches "orgao".
func Fold(s string) string {
	t := transform.Chain(norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
		runes.Map(unicode.ToLower))
	s = strings.ToValidUTF8(strings.TrimSpace(s), "")
	res, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return res
}
