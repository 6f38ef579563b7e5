package field

import (
	"strings"

	goskema "github.com/reoring/goskema"

	"github.com/goliatone/go-formfield/pkg/fieldschema"
)

// MultiSelect holds a list of option values. Import accepts arrays and
// delimiter-separated strings; entries failing the two-pass option match are
// dropped silently, and dropping everything yields a failed import instead
// of an empty list.
type MultiSelect struct {
	Base
}

// NewMultiSelect constructs a multiselect field. Configuration: required,
// options, delimiter (default ","), minSelections, maxSelections.
func NewMultiSelect(name, label string, cfg Config) *MultiSelect {
	return &MultiSelect{Base: NewBase(KindMultiSelect, name, label, cfg)}
}

func (m *MultiSelect) delimiter() string {
	if d, ok := m.Config().String("delimiter"); ok && d != "" {
		return d
	}
	return ","
}

func (m *MultiSelect) Schema() goskema.Schema[any] {
	s := fieldschema.StringList().
		EachIn(enabledValues(m.Config().Options()))
	if m.required() {
		s = s.MinItems(1)
	}
	if min, ok := m.Config().Int("minSelections"); ok {
		s = s.MinItems(min)
	}
	if max, ok := m.Config().Int("maxSelections"); ok {
		s = s.MaxItems(max)
	}
	return fieldschema.Required(s, m.required())
}

func (m *MultiSelect) NewState(initial any) State {
	return NewValueState(m, initial)
}

func (m *MultiSelect) Present(v any) string {
	values, ok := asStringList(v)
	if !ok || len(values) == 0 {
		return Placeholder
	}
	opts := m.Config().Options()
	labels := make([]string, 0, len(values))
	for _, value := range values {
		label := value
		for _, opt := range opts {
			if opt.Value == value {
				label = opt.Label
				break
			}
		}
		labels = append(labels, label)
	}
	return strings.Join(labels, ", ")
}

func (m *MultiSelect) ImportDetailed(raw any) ImportResult {
	opts := m.Config().Options()
	return importWith(m, raw, func(raw any) (any, bool) {
		var entries []string
		if list, ok := asStringList(raw); ok {
			entries = list
		} else if s, ok := raw.(string); ok {
			entries = splitTrimmed(s, m.delimiter())
		} else {
			return nil, false
		}
		matched := make([]string, 0, len(entries))
		for _, entry := range entries {
			entry = strings.TrimSpace(entry)
			if entry == "" {
				continue
			}
			if value, ok := matchOption(opts, entry); ok {
				matched = append(matched, value)
			}
		}
		if len(matched) == 0 {
			return nil, false
		}
		return matched, true
	})
}
