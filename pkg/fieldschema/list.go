package fieldschema

import (
	goskema "github.com/reoring/goskema"
)

// StringList returns a schema accepting []string values.
func StringList() *Schema {
	return &Schema{
		jsType: "array",
		typeCheck: func(v any) goskema.Issues {
			if v == nil {
				return Issue(goskema.CodeRequired)
			}
			if _, ok := v.([]string); !ok {
				return Issue(goskema.CodeInvalidType)
			}
			return nil
		},
	}
}

// MinItems enforces a minimum element count.
func (s *Schema) MinItems(n int) *Schema {
	return s.Rule(func(v any) goskema.Issues {
		if list, ok := v.([]string); ok && len(list) < n {
			return Issue(goskema.CodeTooShort)
		}
		return nil
	})
}

// MaxItems enforces a maximum element count.
func (s *Schema) MaxItems(n int) *Schema {
	return s.Rule(func(v any) goskema.Issues {
		if list, ok := v.([]string); ok && len(list) > n {
			return Issue(goskema.CodeTooLong)
		}
		return nil
	})
}

// EachIn enforces that every element belongs to the allowed value set.
func (s *Schema) EachIn(allowed []string) *Schema {
	return s.Rule(func(v any) goskema.Issues {
		list, ok := v.([]string)
		if !ok {
			return nil
		}
		member := membershipRule(allowed, false)
		for _, item := range list {
			if iss := member(item); len(iss) > 0 {
				return iss
			}
		}
		return nil
	})
}

// EachMaxLen enforces a maximum rune count per element.
func (s *Schema) EachMaxLen(n int) *Schema {
	inner := String().MaxLen(n)
	return s.Rule(func(v any) goskema.Issues {
		list, ok := v.([]string)
		if !ok {
			return nil
		}
		for _, item := range list {
			if err := inner.RuleCheck(nilCtx, item); err != nil {
				iss, _ := goskema.AsIssues(err)
				return iss
			}
		}
		return nil
	})
}
