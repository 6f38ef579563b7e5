package field

import (
	goskema "github.com/reoring/goskema"

	"github.com/goliatone/go-formfield/internal/phonefmt"
	"github.com/goliatone/go-formfield/pkg/fieldschema"
)

// Phone validates numbers against a per-country digit pattern. The stored
// value keeps whatever separators the user typed; presentation re-groups the
// national digits and export emits the E.164 form.
type Phone struct {
	Base
}

// NewPhone constructs a phone field. Configuration: required, country
// (ISO-ish country code, default TR).
func NewPhone(name, label string, cfg Config) *Phone {
	return &Phone{Base: NewBase(KindPhone, name, label, cfg)}
}

func (p *Phone) country() string {
	if code, ok := p.Config().String("country"); ok && code != "" {
		return code
	}
	return phonefmt.DefaultCountry
}

func (p *Phone) Schema() goskema.Schema[any] {
	country := p.country()
	s := fieldschema.String().Format("phone").
		Check("invalid phone number", func(raw string) bool {
			return phonefmt.Valid(country, raw)
		})
	return fieldschema.Required(s, p.required())
}

func (p *Phone) NewState(initial any) State {
	return NewValueState(p, initial)
}

func (p *Phone) Present(v any) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return Placeholder
	}
	return phonefmt.Format(p.country(), s)
}

// Export emits the dialing form: country prefix plus the normalized
// national digits.
func (p *Phone) Export(v any) any {
	s, ok := v.(string)
	if !ok || s == "" {
		return v
	}
	if e164, ok := phonefmt.E164(p.country(), s); ok {
		return e164
	}
	return v
}

func (p *Phone) ImportDetailed(raw any) ImportResult {
	return importWith(p, raw, func(raw any) (any, bool) {
		v, ok := trimmedString(raw)
		if !ok {
			return nil, false
		}
		s := v.(string)
		if s == "" {
			return s, true
		}
		if national, ok := phonefmt.Normalize(p.country(), s); ok {
			return national, true
		}
		return s, true
	})
}
