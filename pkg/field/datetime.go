package field

import (
	"time"

	goskema "github.com/reoring/goskema"

	"github.com/goliatone/go-formfield/internal/dateparse"
	"github.com/goliatone/go-formfield/pkg/fieldschema"
)

// DateTime holds a point in time with minute precision. It shares the date
// field's layered import but keeps the clock component instead of truncating
// to midnight.
type DateTime struct {
	Base
}

// NewDateTime constructs a datetime field. Configuration: required, min, max
// (date or datetime strings, or "today").
func NewDateTime(name, label string, cfg Config) *DateTime {
	return &DateTime{Base: NewBase(KindDateTime, name, label, cfg)}
}

func (d *DateTime) Schema() goskema.Schema[any] {
	s := fieldschema.Date()
	if min, ok := dateBound(d.Config(), "min", false); ok {
		s = s.NotBefore(min)
	}
	if max, ok := dateBound(d.Config(), "max", true); ok {
		s = s.NotAfter(max)
	}
	return fieldschema.Required(s, d.required())
}

func (d *DateTime) NewState(initial any) State {
	return NewValueState(d, initial)
}

func (d *DateTime) Present(v any) string {
	t, ok := v.(time.Time)
	if !ok || t.IsZero() {
		return Placeholder
	}
	return t.Format("02.01.2006 15:04")
}

// Export normalizes to RFC 3339.
func (d *DateTime) Export(v any) any {
	t, ok := v.(time.Time)
	if !ok || t.IsZero() {
		return v
	}
	return t.Format(time.RFC3339)
}

func (d *DateTime) ImportDetailed(raw any) ImportResult {
	return importWith(d, raw, func(raw any) (any, bool) {
		t, ok := dateparse.Coerce(raw)
		if !ok {
			return nil, false
		}
		return t, true
	})
}
