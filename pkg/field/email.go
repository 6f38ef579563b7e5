package field

import (
	"strings"

	goskema "github.com/reoring/goskema"

	"github.com/goliatone/go-formfield/pkg/fieldschema"
)

var emailFormat = func(s string) bool {
	at := strings.Count(s, "@")
	if at != 1 {
		return false
	}
	local, domain, _ := strings.Cut(s, "@")
	if local == "" || domain == "" {
		return false
	}
	if strings.ContainsAny(s, " \t\n") {
		return false
	}
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

// Email validates addresses with the local@domain.tld shape. Import lowers
// the domain part; export is identity.
type Email struct {
	Base
}

// NewEmail constructs an email field. Configuration: required, maxLength.
func NewEmail(name, label string, cfg Config) *Email {
	return &Email{Base: NewBase(KindEmail, name, label, cfg)}
}

func (e *Email) Schema() goskema.Schema[any] {
	s := stringSchemaFrom(e.Config(), e.required()).
		Format("email").
		Check("invalid email address", emailFormat)
	return fieldschema.Required(s, e.required())
}

func (e *Email) NewState(initial any) State {
	return NewValueState(e, initial)
}

func (e *Email) Present(v any) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return Placeholder
	}
	return s
}

func (e *Email) ImportDetailed(raw any) ImportResult {
	return importWith(e, raw, func(raw any) (any, bool) {
		v, ok := trimmedString(raw)
		if !ok {
			return nil, false
		}
		s := v.(string)
		if local, domain, found := strings.Cut(s, "@"); found {
			s = local + "@" + strings.ToLower(domain)
		}
		return s, true
	})
}
