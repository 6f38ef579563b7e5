package field

import (
	"strconv"
	"strings"

	goskema "github.com/reoring/goskema"

	"github.com/goliatone/go-formfield/pkg/fieldschema"
)

// Number is the float64-valued field. The percent kind narrows it to the
// 0-100 range and renders with a percent sign.
type Number struct {
	Base
}

// NewNumber constructs a number field. Configuration: required, min, max,
// integer.
func NewNumber(name, label string, cfg Config) *Number {
	return &Number{Base: NewBase(KindNumber, name, label, cfg)}
}

func (n *Number) Schema() goskema.Schema[any] {
	s := numberSchemaFrom(n.Config())
	return fieldschema.Required(s, n.required())
}

func numberSchemaFrom(cfg Config) *fieldschema.Schema {
	s := fieldschema.Number()
	if min, ok := cfg.Float("min"); ok {
		s = s.Min(min)
	}
	if max, ok := cfg.Float("max"); ok {
		s = s.Max(max)
	}
	if cfg.Bool("integer") {
		s = s.Integer()
	}
	return s
}

func (n *Number) NewState(initial any) State {
	return NewValueState(n, initial)
}

func (n *Number) Present(v any) string {
	f, ok := toFloat(v)
	if !ok {
		return Placeholder
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (n *Number) ImportDetailed(raw any) ImportResult {
	return importWith(n, raw, coerceNumber)
}

// coerceNumber accepts native numerics and numeric strings. String input
// tolerates a decimal comma, which locale-formatted spreadsheets produce.
func coerceNumber(raw any) (any, bool) {
	if f, ok := toFloat(raw); ok {
		return f, true
	}
	s, ok := raw.(string)
	if !ok {
		return nil, false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}
	return f, true
}

// Percent is a number constrained to 0-100 and presented with a percent
// sign. Import tolerates a trailing "%" on string input.
type Percent struct {
	Base
}

// NewPercent constructs a percent field. Configuration: required, min, max
// (both clamped into 0-100).
func NewPercent(name, label string, cfg Config) *Percent {
	return &Percent{Base: NewBase(KindPercent, name, label, cfg)}
}

func (p *Percent) bounds() (float64, float64) {
	min, max := 0.0, 100.0
	if v, ok := p.Config().Float("min"); ok && v > min {
		min = v
	}
	if v, ok := p.Config().Float("max"); ok && v < max {
		max = v
	}
	return min, max
}

func (p *Percent) Schema() goskema.Schema[any] {
	min, max := p.bounds()
	s := fieldschema.Number().Min(min).Max(max)
	if p.Config().Bool("integer") {
		s = s.Integer()
	}
	return fieldschema.Required(s, p.required())
}

func (p *Percent) NewState(initial any) State {
	return NewValueState(p, initial)
}

func (p *Percent) Present(v any) string {
	f, ok := toFloat(v)
	if !ok {
		return Placeholder
	}
	return strconv.FormatFloat(f, 'f', -1, 64) + "%"
}

func (p *Percent) ImportDetailed(raw any) ImportResult {
	return importWith(p, raw, func(raw any) (any, bool) {
		if s, ok := raw.(string); ok {
			raw = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
		}
		return coerceNumber(raw)
	})
}
