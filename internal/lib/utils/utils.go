// Package utils contains small helper functions used across the project.
//
// These are usually generic helpers that don't belong to a specific domain.
package utils

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[-\s]+`)
)

// Slugify converts a title into a URL-safe slug.
//
// Text is NFKD-normalized and reduced to ASCII (accents are dropped, letters
// outside Latin disappear), lowercased, stripped of anything that is not a
// word character, space or hyphen, and runs of spaces/hyphens collapse into
// a single hyphen.
//
//	"Долото PDC 8½" -> "pdc-812"
//	"Hello, World!" -> "hello-world"
//
// The result may be empty; callers decide on a fallback.
func Slugify(value string) string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(value) {
		if r < unicode.MaxASCII {
			b.WriteRune(r)
		}
	}

	slug := slugStrip.ReplaceAllString(strings.ToLower(b.String()), "")
	slug = slugCollapse.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-_")
}

// Deref returns the pointed-to string or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NilIfEmpty turns blank strings into nil so optional text columns store NULL.
func NilIfEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

// FormatRubles renders a price with two decimals and space-grouped
// thousands: 1234.5 -> "1 234.50 руб.".
func FormatRubles(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}

	return sign + b.String() + "." + frac + " руб."
}
