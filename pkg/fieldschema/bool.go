package fieldschema

import (
	goskema "github.com/reoring/goskema"
)

// Bool returns a schema accepting bool values. Booleans never accept nil,
// even when the enclosing field is optional: an unchecked checkbox reads
// false, not absent. Required consults this via the nil-strict marker.
func Bool() *Schema {
	return &Schema{
		jsType:    "boolean",
		nilStrict: true,
		typeCheck: func(v any) goskema.Issues {
			if v == nil {
				return Issue(goskema.CodeRequired)
			}
			if _, ok := v.(bool); !ok {
				return Issue(goskema.CodeInvalidType)
			}
			return nil
		},
	}
}

// TrueOnly narrows the accepted value set to {true}. Under required
// semantics false is a well-typed but invalid value, which keeps
// consent-checkbox fields honest.
func (s *Schema) TrueOnly() *Schema {
	return s.Rule(func(v any) goskema.Issues {
		if b, ok := v.(bool); ok && !b {
			return Issue(goskema.CodeRequired)
		}
		return nil
	})
}
