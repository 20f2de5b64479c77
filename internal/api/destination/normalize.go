package destination

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName lower-cases, trims and strips diacritics, so "São Paulo" and
// "Sao Paulo" compare equal. Inner whitespace is collapsed to single spaces.
func NormalizeName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// NormalizeKey builds the lookup key of a destination: "city_country".
func NormalizeKey(city, country string) string {
	return NormalizeName(city) + "_" + NormalizeName(country)
}

// tokens splits a normalized name into words, treating punctuation as separators.
func tokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
