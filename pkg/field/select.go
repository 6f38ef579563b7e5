package field

import (
	goskema "github.com/reoring/goskema"

	"github.com/goliatone/go-formfield/pkg/fieldschema"
)

// Select holds a single option value. Validity is membership in the enabled
// option set: a value matching a disabled option is rejected even though the
// option is still listed.
type Select struct {
	Base
}

// NewSelect constructs a select field. Configuration: required, options.
func NewSelect(name, label string, cfg Config) *Select {
	return &Select{Base: NewBase(KindSelect, name, label, cfg)}
}

func (s *Select) Schema() goskema.Schema[any] {
	sch := fieldschema.String().
		OneOf(enabledValues(s.Config().Options()))
	return fieldschema.Required(sch, s.required())
}

func (s *Select) NewState(initial any) State {
	return NewValueState(s, initial)
}

// Present shows the option's label. The full option list is consulted so a
// stored value whose option has since been disabled still renders readably.
func (s *Select) Present(v any) string {
	value, ok := v.(string)
	if !ok || value == "" {
		return Placeholder
	}
	for _, opt := range s.Config().Options() {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

func (s *Select) ImportDetailed(raw any) ImportResult {
	opts := s.Config().Options()
	return importWith(s, raw, func(raw any) (any, bool) {
		v, ok := trimmedString(raw)
		if !ok {
			return nil, false
		}
		entry := v.(string)
		if entry == "" {
			return entry, true
		}
		matched, ok := matchOption(opts, entry)
		if !ok {
			return nil, false
		}
		return matched, true
	})
}

// matchOption resolves an imported entry to an option value: first by value
// across the whole list, then by case-sensitive label. Matching runs over
// disabled options too; the schema rejects those afterwards.
func matchOption(opts []Option, entry string) (string, bool) {
	for _, opt := range opts {
		if opt.Value == entry {
			return opt.Value, true
		}
	}
	for _, opt := range opts {
		if opt.Label == entry {
			return opt.Value, true
		}
	}
	return "", false
}
