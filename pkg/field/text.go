package field

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	goskema "github.com/reoring/goskema"

	"github.com/goliatone/go-formfield/pkg/fieldschema"
)

// Text is the single-line string field and the conventional fallback for
// unknown kinds. The textarea and hidden kinds share its behavior and differ
// only in their discriminant.
type Text struct {
	Base
}

// NewText constructs a text field. Configuration: required, minLength,
// maxLength, pattern.
func NewText(name, label string, cfg Config) *Text {
	return &Text{Base: NewBase(KindText, name, label, cfg)}
}

// NewTextArea constructs a multi-line text field.
func NewTextArea(name, label string, cfg Config) *Text {
	return &Text{Base: NewBase(KindTextArea, name, label, cfg)}
}

// NewHidden constructs a hidden passthrough string field.
func NewHidden(name, label string, cfg Config) *Text {
	return &Text{Base: NewBase(KindHidden, name, label, cfg)}
}

func (t *Text) Schema() goskema.Schema[any] {
	s := stringSchemaFrom(t.Config(), t.required())
	return fieldschema.Required(s, t.required())
}

// stringSchemaFrom assembles the common string rule set. A pattern that does
// not compile is skipped, so malformed configuration degrades to
// always-passing instead of a construction fault.
func stringSchemaFrom(cfg Config, required bool) *fieldschema.Schema {
	s := fieldschema.String()
	if required {
		s = s.NonEmpty()
	}
	if n, ok := cfg.Int("minLength"); ok {
		s = s.MinLen(n)
	}
	if n, ok := cfg.Int("maxLength"); ok {
		s = s.MaxLen(n)
	}
	if pattern, ok := cfg.String("pattern"); ok && pattern != "" {
		if re, err := regexp.Compile(pattern); err == nil {
			s = s.Pattern(re)
		}
	}
	return s
}

func (t *Text) NewState(initial any) State {
	return NewValueState(t, initial)
}

func (t *Text) Present(v any) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return Placeholder
	}
	return s
}

func (t *Text) ImportDetailed(raw any) ImportResult {
	return importWith(t, raw, coerceString)
}

// coerceString is the shared string coercion: strings pass through, numbers
// and booleans render to their textual form, everything else fails.
func coerceString(raw any) (any, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case fmt.Stringer:
		return v.String(), true
	default:
		if f, ok := toFloat(raw); ok {
			return strconv.FormatFloat(f, 'f', -1, 64), true
		}
		return nil, false
	}
}

// trimmedString is coerceString plus surrounding-whitespace removal, for
// kinds where padding is never meaningful.
func trimmedString(raw any) (any, bool) {
	v, ok := coerceString(raw)
	if !ok {
		return nil, false
	}
	return strings.TrimSpace(v.(string)), true
}
