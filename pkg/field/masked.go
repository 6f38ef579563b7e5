package field

import (
	"strings"
	"unicode"

	goskema "github.com/reoring/goskema"

	"github.com/goliatone/go-formfield/pkg/fieldschema"
)

// Masked constrains input to a character mask: '#' accepts a digit, 'A' a
// letter, '*' any character; every other mask rune is a literal that must
// appear verbatim. Import re-applies the mask over the bare characters so
// separators the user omitted get reinserted.
type Masked struct {
	Base
}

// NewMasked constructs a masked field. Configuration: required, mask.
// An empty mask accepts any string.
func NewMasked(name, label string, cfg Config) *Masked {
	return &Masked{Base: NewBase(KindMasked, name, label, cfg)}
}

func (m *Masked) mask() string {
	mask, _ := m.Config().String("mask")
	return mask
}

func (m *Masked) Schema() goskema.Schema[any] {
	mask := m.mask()
	s := stringSchemaFrom(m.Config(), m.required())
	if mask != "" {
		s = s.Check("value does not match mask", func(raw string) bool {
			return matchesMask(mask, raw)
		})
	}
	return fieldschema.Required(s, m.required())
}

func matchesMask(mask, raw string) bool {
	mr := []rune(mask)
	vr := []rune(raw)
	if len(mr) != len(vr) {
		return false
	}
	for i, mc := range mr {
		switch mc {
		case '#':
			if !unicode.IsDigit(vr[i]) {
				return false
			}
		case 'A':
			if !unicode.IsLetter(vr[i]) {
				return false
			}
		case '*':
		default:
			if vr[i] != mc {
				return false
			}
		}
	}
	return true
}

// applyMask lays the input's payload characters into the mask slots and
// reinserts the literals. Characters matching an upcoming literal are
// consumed so already-formatted input passes through unchanged.
func applyMask(mask, raw string) (string, bool) {
	var out strings.Builder
	input := []rune(raw)
	pos := 0
	next := func(want func(rune) bool) (rune, bool) {
		for pos < len(input) {
			r := input[pos]
			pos++
			if want(r) {
				return r, true
			}
			if !unicode.IsSpace(r) && !strings.ContainsRune("-.()/", r) {
				return 0, false
			}
		}
		return 0, false
	}
	for _, mc := range mask {
		switch mc {
		case '#':
			r, ok := next(unicode.IsDigit)
			if !ok {
				return "", false
			}
			out.WriteRune(r)
		case 'A':
			r, ok := next(unicode.IsLetter)
			if !ok {
				return "", false
			}
			out.WriteRune(r)
		case '*':
			if pos >= len(input) {
				return "", false
			}
			out.WriteRune(input[pos])
			pos++
		default:
			if pos < len(input) && input[pos] == mc {
				pos++
			}
			out.WriteRune(mc)
		}
	}
	// Leftover payload means the input was longer than the mask.
	for ; pos < len(input); pos++ {
		r := input[pos]
		if !unicode.IsSpace(r) {
			return "", false
		}
	}
	return out.String(), true
}

func (m *Masked) NewState(initial any) State {
	return NewValueState(m, initial)
}

func (m *Masked) Present(v any) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return Placeholder
	}
	return s
}

func (m *Masked) ImportDetailed(raw any) ImportResult {
	return importWith(m, raw, func(raw any) (any, bool) {
		v, ok := trimmedString(raw)
		if !ok {
			return nil, false
		}
		s := v.(string)
		mask := m.mask()
		if mask == "" || s == "" || matchesMask(mask, s) {
			return s, true
		}
		if formatted, ok := applyMask(mask, s); ok {
			return formatted, true
		}
		return nil, false
	})
}
