package fieldschema

import (
	"regexp"
	"strings"
	"unicode/utf8"

	goskema "github.com/reoring/goskema"
)

// String returns a schema accepting string values. nil is rejected with the
// required code; Required widens that for optional fields.
func String() *Schema {
	return &Schema{
		jsType: "string",
		typeCheck: func(v any) goskema.Issues {
			if v == nil {
				return Issue(goskema.CodeRequired)
			}
			if _, ok := v.(string); !ok {
				return Issue(goskema.CodeInvalidType)
			}
			return nil
		},
	}
}

// NonEmpty rejects strings that are empty after trimming.
func (s *Schema) NonEmpty() *Schema {
	return s.Rule(func(v any) goskema.Issues {
		str, ok := v.(string)
		if !ok {
			return nil
		}
		if strings.TrimSpace(str) == "" {
			return Issue(goskema.CodeRequired)
		}
		return nil
	})
}

// MinLen enforces a minimum rune count.
func (s *Schema) MinLen(n int) *Schema {
	return s.Rule(func(v any) goskema.Issues {
		str, ok := v.(string)
		if !ok {
			return nil
		}
		if utf8.RuneCountInString(str) < n {
			return Issue(goskema.CodeTooShort)
		}
		return nil
	})
}

// MaxLen enforces a maximum rune count.
func (s *Schema) MaxLen(n int) *Schema {
	return s.Rule(func(v any) goskema.Issues {
		str, ok := v.(string)
		if !ok {
			return nil
		}
		if utf8.RuneCountInString(str) > n {
			return Issue(goskema.CodeTooLong)
		}
		return nil
	})
}

// Pattern enforces a full regexp match. A nil expression adds no rule so
// misconfigured patterns degrade to always-passing rather than failing
// construction.
func (s *Schema) Pattern(re *regexp.Regexp) *Schema {
	if re == nil {
		return s
	}
	return s.Rule(func(v any) goskema.Issues {
		str, ok := v.(string)
		if !ok {
			return nil
		}
		if !re.MatchString(str) {
			return Issue(goskema.CodePattern)
		}
		return nil
	})
}

// Check adds a format predicate; failures carry the invalid_format code and
// the supplied message.
func (s *Schema) Check(message string, fn func(string) bool) *Schema {
	return s.Rule(func(v any) goskema.Issues {
		str, ok := v.(string)
		if !ok {
			return nil
		}
		if !fn(str) {
			return IssueMsg(goskema.CodeInvalidFormat, message)
		}
		return nil
	})
}

// OneOf enforces membership in the allowed value set. Matching is exact and
// case-sensitive; use OneOfFold for case-insensitive sets.
func (s *Schema) OneOf(allowed []string) *Schema {
	return s.Rule(membershipRule(allowed, false))
}

// OneOfFold enforces case-insensitive membership in the allowed value set.
func (s *Schema) OneOfFold(allowed []string) *Schema {
	return s.Rule(membershipRule(allowed, true))
}

func membershipRule(allowed []string, fold bool) Rule {
	return func(v any) goskema.Issues {
		str, ok := v.(string)
		if !ok {
			return nil
		}
		for _, a := range allowed {
			if a == str || (fold && strings.EqualFold(a, str)) {
				return nil
			}
		}
		return Issue(goskema.CodeInvalidEnum)
	}
}
