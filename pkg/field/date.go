package field

import (
	"time"

	goskema "github.com/reoring/goskema"

	"github.com/goliatone/go-formfield/internal/dateparse"
	"github.com/goliatone/go-formfield/pkg/fieldschema"
)

// boundToday is the configuration spelling for "bounded by the current day".
const boundToday = "today"

// Date holds a calendar day as a time.Time truncated to midnight. Import is
// layered best-effort coercion (native values, ISO strings, the DD.MM.YYYY
// locale form, epoch timestamps, Excel serials) and every successfully
// parsed candidate is still checked against the configured bounds; a
// parseable date outside min/max fails import.
type Date struct {
	Base
}

// NewDate constructs a date field. Configuration: required, min, max; the
// bounds accept a date string or the literal "today".
func NewDate(name, label string, cfg Config) *Date {
	return &Date{Base: NewBase(KindDate, name, label, cfg)}
}

func (d *Date) Schema() goskema.Schema[any] {
	s := fieldschema.Date()
	if min, ok := dateBound(d.Config(), "min", false); ok {
		s = s.NotBefore(min)
	}
	if max, ok := dateBound(d.Config(), "max", true); ok {
		s = s.NotAfter(max)
	}
	return fieldschema.Required(s, d.required())
}

// dateBound resolves a min/max configuration entry. "today" means the start
// or end of the current day depending on which side the bound sits on; plain
// dates widen to cover their whole day so bounds stay inclusive.
func dateBound(cfg Config, key string, end bool) (time.Time, bool) {
	raw, ok := cfg.String(key)
	if ok && raw == boundToday {
		if end {
			return dateparse.EndOfDay(time.Now()), true
		}
		return dateparse.StartOfDay(time.Now()), true
	}
	v := cfg.Value(key)
	if v == nil {
		return time.Time{}, false
	}
	t, parsed := dateparse.Coerce(v)
	if !parsed {
		return time.Time{}, false
	}
	if end {
		return dateparse.EndOfDay(t), true
	}
	return dateparse.StartOfDay(t), true
}

func (d *Date) NewState(initial any) State {
	return NewValueState(d, initial)
}

// Present renders the DD.MM.YYYY locale form.
func (d *Date) Present(v any) string {
	t, ok := v.(time.Time)
	if !ok || t.IsZero() {
		return Placeholder
	}
	return t.Format("02.01.2006")
}

// Export normalizes to the ISO date encoding.
func (d *Date) Export(v any) any {
	t, ok := v.(time.Time)
	if !ok || t.IsZero() {
		return v
	}
	return t.Format("2006-01-02")
}

func (d *Date) ImportDetailed(raw any) ImportResult {
	return importWith(d, raw, func(raw any) (any, bool) {
		t, ok := dateparse.Coerce(raw)
		if !ok {
			return nil, false
		}
		return dateparse.StartOfDay(t), true
	})
}
