package field

import (
	"fmt"
	"strings"
	gotime "time"

	goskema "github.com/reoring/goskema"

	"github.com/goliatone/go-formfield/pkg/fieldschema"
)

// Time holds a wall-clock time of day as the canonical "HH:MM" string.
// Seconds are accepted on import and truncated.
type Time struct {
	Base
}

// NewTime constructs a time field. Configuration: required, min, max
// ("HH:MM" strings; minutes compared lexically after normalization).
func NewTime(name, label string, cfg Config) *Time {
	return &Time{Base: NewBase(KindTime, name, label, cfg)}
}

func (t *Time) Schema() goskema.Schema[any] {
	s := fieldschema.String().Format("time").
		Check("invalid time", func(raw string) bool {
			_, ok := parseClock(raw)
			return ok
		})
	if min, ok := t.Config().String("min"); ok {
		if normMin, valid := parseClock(min); valid {
			s = s.Check("time before minimum", func(raw string) bool {
				v, ok := parseClock(raw)
				return ok && v >= normMin
			})
		}
	}
	if max, ok := t.Config().String("max"); ok {
		if normMax, valid := parseClock(max); valid {
			s = s.Check("time after maximum", func(raw string) bool {
				v, ok := parseClock(raw)
				return ok && v <= normMax
			})
		}
	}
	return fieldschema.Required(s, t.required())
}

// parseClock normalizes H:MM, HH:MM and HH:MM:SS spellings to "HH:MM".
// Normalized values compare correctly as strings.
func parseClock(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{"15:04", "15:4", "15:04:05"} {
		if parsed, err := gotime.Parse(layout, raw); err == nil {
			return parsed.Format("15:04"), true
		}
	}
	return "", false
}

func (t *Time) NewState(initial any) State {
	return NewValueState(t, initial)
}

func (t *Time) Present(v any) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return Placeholder
	}
	return s
}

func (t *Time) ImportDetailed(raw any) ImportResult {
	return importWith(t, raw, coerceClock)
}

func coerceClock(raw any) (any, bool) {
	switch v := raw.(type) {
	case string:
		norm, ok := parseClock(v)
		if !ok {
			return nil, false
		}
		return norm, true
	case gotime.Time:
		if v.IsZero() {
			return nil, false
		}
		return v.Format("15:04"), true
	default:
		if f, ok := toFloat(raw); ok {
			// Minutes since midnight, the encoding spreadsheets hand over
			// for duration-style cells.
			m := int(f)
			if float64(m) != f || m < 0 || m >= 24*60 {
				return nil, false
			}
			return fmt.Sprintf("%02d:%02d", m/60, m%60), true
		}
		return nil, false
	}
}
