package fieldschema

import (
	"time"

	goskema "github.com/reoring/goskema"
)

// Date returns a schema accepting non-zero time.Time values.
func Date() *Schema {
	return &Schema{
		jsType: "string",
		format: "date-time",
		typeCheck: func(v any) goskema.Issues {
			if v == nil {
				return Issue(goskema.CodeRequired)
			}
			t, ok := v.(time.Time)
			if !ok || t.IsZero() {
				return Issue(goskema.CodeInvalidType)
			}
			return nil
		},
	}
}

// NotBefore rejects instants earlier than min.
func (s *Schema) NotBefore(min time.Time) *Schema {
	return s.Rule(func(v any) goskema.Issues {
		if t, ok := v.(time.Time); ok && t.Before(min) {
			return Issue(goskema.CodeTooSmall)
		}
		return nil
	})
}

// NotAfter rejects instants later than max.
func (s *Schema) NotAfter(max time.Time) *Schema {
	return s.Rule(func(v any) goskema.Issues {
		if t, ok := v.(time.Time); ok && t.After(max) {
			return Issue(goskema.CodeTooBig)
		}
		return nil
	})
}
