package fieldschema

import (
	"encoding/json"
	"math"
	"strconv"

	goskema "github.com/reoring/goskema"
)

// Number returns a schema accepting numeric values (float64, the int family,
// or json.Number). Rules compare through float64.
func Number() *Schema {
	return &Schema{
		jsType: "number",
		typeCheck: func(v any) goskema.Issues {
			if v == nil {
				return Issue(goskema.CodeRequired)
			}
			f, ok := AsFloat(v)
			if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
				return Issue(goskema.CodeInvalidType)
			}
			return nil
		},
	}
}

// Min enforces an inclusive lower bound.
func (s *Schema) Min(min float64) *Schema {
	return s.Rule(func(v any) goskema.Issues {
		if f, ok := AsFloat(v); ok && f < min {
			return Issue(goskema.CodeTooSmall)
		}
		return nil
	})
}

// Max enforces an inclusive upper bound.
func (s *Schema) Max(max float64) *Schema {
	return s.Rule(func(v any) goskema.Issues {
		if f, ok := AsFloat(v); ok && f > max {
			return Issue(goskema.CodeTooBig)
		}
		return nil
	})
}

// Integer rejects values with a fractional part.
func (s *Schema) Integer() *Schema {
	return s.Rule(func(v any) goskema.Issues {
		if f, ok := AsFloat(v); ok && f != math.Trunc(f) {
			return Issue(goskema.CodeInvalidType)
		}
		return nil
	})
}

// AsFloat widens any supported numeric representation to float64.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := strconv.ParseFloat(string(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
