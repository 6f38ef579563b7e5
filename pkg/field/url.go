package field

import (
	"net/url"
	"strings"

	goskema "github.com/reoring/goskema"

	"github.com/goliatone/go-formfield/pkg/fieldschema"
)

// URL validates absolute http(s) links. Import prepends https:// to
// scheme-less input before validating, matching how people paste addresses.
type URL struct {
	Base
}

// NewURL constructs a url field. Configuration: required, maxLength,
// schemes (allowed URL schemes, default http and https).
func NewURL(name, label string, cfg Config) *URL {
	return &URL{Base: NewBase(KindURL, name, label, cfg)}
}

func (u *URL) allowedSchemes() []string {
	if schemes, ok := u.Config().Strings("schemes"); ok && len(schemes) > 0 {
		return schemes
	}
	return []string{"http", "https"}
}

func (u *URL) Schema() goskema.Schema[any] {
	schemes := u.allowedSchemes()
	s := stringSchemaFrom(u.Config(), u.required()).
		Format("uri").
		Check("invalid url", func(raw string) bool {
			parsed, err := url.Parse(raw)
			if err != nil || parsed.Host == "" {
				return false
			}
			for _, scheme := range schemes {
				if strings.EqualFold(parsed.Scheme, scheme) {
					return true
				}
			}
			return false
		})
	return fieldschema.Required(s, u.required())
}

func (u *URL) NewState(initial any) State {
	return NewValueState(u, initial)
}

func (u *URL) Present(v any) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return Placeholder
	}
	return s
}

// FilterPreview shows just the host, which reads better in a filter chip
// than a full address.
func (u *URL) FilterPreview(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	if parsed, err := url.Parse(s); err == nil && parsed.Host != "" {
		return parsed.Host, true
	}
	return s, true
}

func (u *URL) ImportDetailed(raw any) ImportResult {
	return importWith(u, raw, func(raw any) (any, bool) {
		v, ok := trimmedString(raw)
		if !ok {
			return nil, false
		}
		s := v.(string)
		if s != "" && !strings.Contains(s, "://") {
			s = "https://" + s
		}
		return s, true
	})
}
