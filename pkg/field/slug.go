package field

import (
	goskema "github.com/reoring/goskema"

	"github.com/goliatone/go-formfield/internal/slugify"
	"github.com/goliatone/go-formfield/pkg/fieldschema"
)

// Slug accepts only lowercase hyphenated identifiers. Import slugifies
// arbitrary text, so "Başlık Örneği" coerces to "baslik-ornegi" rather than
// failing.
type Slug struct {
	Base
}

// NewSlug constructs a slug field. Configuration: required, maxLength.
func NewSlug(name, label string, cfg Config) *Slug {
	return &Slug{Base: NewBase(KindSlug, name, label, cfg)}
}

func (s *Slug) Schema() goskema.Schema[any] {
	sch := stringSchemaFrom(s.Config(), s.required()).
		Format("slug").
		Check("not a valid slug", slugify.Valid)
	return fieldschema.Required(sch, s.required())
}

func (s *Slug) NewState(initial any) State {
	return NewValueState(s, initial)
}

func (s *Slug) Present(v any) string {
	str, ok := v.(string)
	if !ok || str == "" {
		return Placeholder
	}
	return str
}

func (s *Slug) ImportDetailed(raw any) ImportResult {
	return importWith(s, raw, func(raw any) (any, bool) {
		v, ok := trimmedString(raw)
		if !ok {
			return nil, false
		}
		str := v.(string)
		if str == "" {
			return str, true
		}
		made := slugify.Make(str)
		if made == "" {
			return nil, false
		}
		return made, true
	})
}
