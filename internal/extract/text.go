// Package extract implements the five field extractors of the
// normalization engine. Each extractor is a pure function over raw text and
// the taxonomy tables: it never fails, never touches storage, and resolves
// anything it cannot parse to the documented sentinel instead of an error.
package extract

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	dashPattern       = regexp.MustCompile(`[\x{2013}\x{2014}\x{2015}]`)
)

// CleanText strips HTML tags, unifies exotic dashes and collapses
// whitespace. Safe on empty input.
func CleanText(text string) string {
	text = htmlTagPattern.ReplaceAllString(text, " ")
	text = dashPattern.ReplaceAllString(text, "-")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

var diacriticFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldDiacritics strips combining accents ("Nîmes" -> "Nimes"). Used to
// build comparison keys so accent variants of one place collapse into one
// category.
func FoldDiacritics(s string) string {
	folded, _, err := transform.String(diacriticFolder, s)
	if err != nil {
		return s
	}
	return folded
}

// CanonicalPlaceName normalizes the casing of a city or region name:
// lowercased then title-cased per word, hyphenated parts included, so
// "PARIS 15", "paris 15" and "Paris 15" all become "Paris 15".
func CanonicalPlaceName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	lower := strings.ToLower(name)
	var b strings.Builder
	upperNext := true
	for _, r := range lower {
		if upperNext && unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
			continue
		}
		if r == ' ' || r == '-' || r == '\'' {
			upperNext = true
		}
		b.WriteRune(r)
	}
	return b.String()
}
