// Package slugify turns arbitrary text into URL-safe slugs: transliterate,
// strip diacritics, lowercase, and collapse separators into single hyphens.
package slugify

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// translit maps characters NFD decomposition cannot fold: dotless and
// ligature forms common in Turkish and western European text.
var translit = map[rune]string{
	'ı': "i", 'İ': "i",
	'ß': "ss",
	'æ': "ae", 'Æ': "ae",
	'œ': "oe", 'Œ': "oe",
	'ø': "o", 'Ø': "o",
	'đ': "d", 'Đ': "d",
	'ł': "l", 'Ł': "l",
	'þ': "th", 'Þ': "th",
	'&': " and ",
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make converts raw into slug form. Inputs with no usable characters yield
// the empty string.
func Make(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if repl, ok := translit[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}

	folded, _, err := transform.String(stripMarks, b.String())
	if err != nil {
		folded = b.String()
	}
	folded = strings.ToLower(folded)

	var out strings.Builder
	lastHyphen := true // swallow leading separators
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				out.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(out.String(), "-")
}

// Valid reports whether s already is a well-formed slug.
func Valid(s string) bool {
	if s == "" {
		return false
	}
	return s == Make(s)
}
