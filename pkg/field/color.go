package field

import (
	"strings"

	goskema "github.com/reoring/goskema"

	"github.com/goliatone/go-formfield/internal/colorspace"
	"github.com/goliatone/go-formfield/pkg/fieldschema"
)

// ColorField accepts hex, rgb()/rgba() and hsl()/hsla() notations and
// exports the canonical upper-cased hex form. A preset list can restrict the
// valid set to specific swatches.
type ColorField struct {
	Base
}

// NewColor constructs a color field. Configuration: required, presets
// (list of color strings), restrictToPresets.
func NewColor(name, label string, cfg Config) *ColorField {
	return &ColorField{Base: NewBase(KindColor, name, label, cfg)}
}

// presetHexes canonicalizes the configured preset list to upper hex so
// membership checks compare like with like. Unparseable presets are dropped.
func (c *ColorField) presetHexes() []string {
	presets, ok := c.Config().Strings("presets")
	if !ok {
		return nil
	}
	out := make([]string, 0, len(presets))
	for _, p := range presets {
		if parsed, ok := colorspace.Parse(p); ok {
			out = append(out, parsed.Hex())
		}
	}
	return out
}

func (c *ColorField) Schema() goskema.Schema[any] {
	s := fieldschema.String().Format("color").
		Check("invalid color", colorspace.Valid)
	if c.Config().Bool("restrictToPresets") {
		allowed := c.presetHexes()
		s = s.Check("color not in preset list", func(raw string) bool {
			parsed, ok := colorspace.Parse(raw)
			if !ok {
				return false
			}
			hex := parsed.Hex()
			for _, p := range allowed {
				if strings.EqualFold(p, hex) {
					return true
				}
			}
			return false
		})
	}
	return fieldschema.Required(s, c.required())
}

func (c *ColorField) NewState(initial any) State {
	return NewValueState(c, initial)
}

func (c *ColorField) Present(v any) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return Placeholder
	}
	return s
}

// Export always canonicalizes to upper-cased hex, whatever notation the
// value was entered in.
func (c *ColorField) Export(v any) any {
	s, ok := v.(string)
	if !ok || s == "" {
		return v
	}
	if parsed, ok := colorspace.Parse(s); ok {
		return parsed.Hex()
	}
	return v
}

func (c *ColorField) ImportDetailed(raw any) ImportResult {
	return importWith(c, raw, func(raw any) (any, bool) {
		v, ok := trimmedString(raw)
		if !ok {
			return nil, false
		}
		s := v.(string)
		if _, parses := colorspace.Parse(s); !parses {
			return nil, false
		}
		return s, true
	})
}
