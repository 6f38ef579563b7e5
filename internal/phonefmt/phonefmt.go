// Package phonefmt holds the per-country dialing table the phone field kind
// validates and formats against. Validation strips separators before
// matching; formatting re-inserts the country's grouping; export emits the
// E.164-like form (dialing prefix plus normalized national digits).
package phonefmt

import (
	"regexp"
	"strings"
)

// Country describes one dialing plan entry.
type Country struct {
	Code   string
	Prefix string
	// Pattern matches the normalized national-significant number.
	Pattern *regexp.Regexp
	// National extracts the national-significant number from looser input,
	// tolerating the dialing prefix or a leading trunk zero.
	National *regexp.Regexp
	// Groups is the digit grouping used for display formatting.
	Groups []int
}

var countries = map[string]Country{
	"TR": {
		Code:     "TR",
		Prefix:   "+90",
		Pattern:  regexp.MustCompile(`^5\d{9}$|^[2348]\d{9}$`),
		National: regexp.MustCompile(`^(?:\+?90|0)?(\d{10})$`),
		Groups:   []int{3, 3, 2, 2},
	},
	"US": {
		Code:     "US",
		Prefix:   "+1",
		Pattern:  regexp.MustCompile(`^[2-9]\d{9}$`),
		National: regexp.MustCompile(`^(?:\+?1)?([2-9]\d{9})$`),
		Groups:   []int{3, 3, 4},
	},
	"GB": {
		Code:     "GB",
		Prefix:   "+44",
		Pattern:  regexp.MustCompile(`^[1-9]\d{9}$`),
		National: regexp.MustCompile(`^(?:\+?44|0)?([1-9]\d{9})$`),
		Groups:   []int{4, 3, 3},
	},
	"DE": {
		Code:     "DE",
		Prefix:   "+49",
		Pattern:  regexp.MustCompile(`^[1-9]\d{9,10}$`),
		National: regexp.MustCompile(`^(?:\+?49|0)?([1-9]\d{9,10})$`),
		Groups:   []int{3, 4, 4},
	},
	"FR": {
		Code:     "FR",
		Prefix:   "+33",
		Pattern:  regexp.MustCompile(`^[1-9]\d{8}$`),
		National: regexp.MustCompile(`^(?:\+?33|0)?([1-9]\d{8})$`),
		Groups:   []int{1, 2, 2, 2, 2},
	},
	"NL": {
		Code:     "NL",
		Prefix:   "+31",
		Pattern:  regexp.MustCompile(`^[1-9]\d{8}$`),
		National: regexp.MustCompile(`^(?:\+?31|0)?([1-9]\d{8})$`),
		Groups:   []int{2, 3, 4},
	},
}

// DefaultCountry is assumed when a phone field has no country configured.
const DefaultCountry = "TR"

// Lookup returns the dialing plan for an ISO country code.
func Lookup(code string) (Country, bool) {
	c, ok := countries[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// Codes returns every supported country code.
func Codes() []string {
	out := make([]string, 0, len(countries))
	for code := range countries {
		out = append(out, code)
	}
	return out
}

// StripSeparators removes everything except digits and a leading plus.
func StripSeparators(raw string) string {
	var b strings.Builder
	for i, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize extracts the national-significant number via the country's
// extraction regex, falling back to raw digit-stripping when the regex does
// not take.
func Normalize(code, raw string) (string, bool) {
	c, ok := Lookup(code)
	if !ok {
		return "", false
	}
	stripped := StripSeparators(raw)
	if stripped == "" {
		return "", false
	}
	if m := c.National.FindStringSubmatch(stripped); m != nil {
		return m[1], true
	}
	digits := strings.TrimPrefix(stripped, "+")
	if c.Pattern.MatchString(digits) {
		return digits, true
	}
	return "", false
}

// Valid reports whether raw normalizes to a number the country accepts.
func Valid(code, raw string) bool {
	n, ok := Normalize(code, raw)
	if !ok {
		return false
	}
	c, _ := Lookup(code)
	return c.Pattern.MatchString(n)
}

// Format renders the national number with the country's digit grouping. Input
// that does not normalize is returned unchanged.
func Format(code, raw string) string {
	n, ok := Normalize(code, raw)
	if !ok {
		return raw
	}
	c, _ := Lookup(code)
	var parts []string
	rest := n
	for _, size := range c.Groups {
		if len(rest) < size {
			break
		}
		parts = append(parts, rest[:size])
		rest = rest[size:]
	}
	if rest != "" {
		parts = append(parts, rest)
	}
	return strings.Join(parts, " ")
}

// E164 renders the canonical dialing form: prefix plus national digits.
func E164(code, raw string) (string, bool) {
	n, ok := Normalize(code, raw)
	if !ok {
		return "", false
	}
	c, _ := Lookup(code)
	return c.Prefix + n, true
}
