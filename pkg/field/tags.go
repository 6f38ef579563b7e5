package field

import (
	"strings"

	goskema "github.com/reoring/goskema"

	"github.com/goliatone/go-formfield/pkg/fieldschema"
)

// Tags is a free-form string list. String import splits on the configured
// delimiter, trims each entry and drops empties; a result with no entries
// left is a failed import rather than an empty list.
type Tags struct {
	Base
}

// NewTags constructs a tags field. Configuration: required, delimiter
// (default ","), minItems, maxItems, maxTagLength.
func NewTags(name, label string, cfg Config) *Tags {
	return &Tags{Base: NewBase(KindTags, name, label, cfg)}
}

func (t *Tags) delimiter() string {
	if d, ok := t.Config().String("delimiter"); ok && d != "" {
		return d
	}
	return ","
}

func (t *Tags) Schema() goskema.Schema[any] {
	s := fieldschema.StringList()
	if t.required() {
		s = s.MinItems(1)
	}
	if min, ok := t.Config().Int("minItems"); ok {
		s = s.MinItems(min)
	}
	if max, ok := t.Config().Int("maxItems"); ok {
		s = s.MaxItems(max)
	}
	if maxLen, ok := t.Config().Int("maxTagLength"); ok {
		s = s.EachMaxLen(maxLen)
	}
	return fieldschema.Required(s, t.required())
}

func (t *Tags) NewState(initial any) State {
	return NewValueState(t, initial)
}

func (t *Tags) Present(v any) string {
	tags, ok := asStringList(v)
	if !ok || len(tags) == 0 {
		return Placeholder
	}
	return strings.Join(tags, ", ")
}

func (t *Tags) ImportDetailed(raw any) ImportResult {
	return importWith(t, raw, func(raw any) (any, bool) {
		if tags, ok := asStringList(raw); ok {
			return tags, true
		}
		s, ok := raw.(string)
		if !ok {
			return nil, false
		}
		tags := splitTrimmed(s, t.delimiter())
		if len(tags) == 0 {
			return nil, false
		}
		return tags, true
	})
}

func asStringList(v any) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		return t, true
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

func splitTrimmed(s, delimiter string) []string {
	parts := strings.Split(s, delimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
