package field

import (
	"strconv"
	"strings"
)

// Config is the closed option set a field type reads its behavior from.
// Unknown keys are ignored, never errors: each accessor reads exactly the key
// it is asked for and nothing validates the remainder. Values arrive from
// YAML/JSON documents or host code, so accessors coerce across the
// representations those produce.
type Config map[string]any

// Bool reads a boolean option. String and numeric spellings ("true", 1) are
// accepted because loaders frequently deliver them.
func (c Config) Bool(key string) bool {
	v, ok := c[key]
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		return err == nil && b
	default:
		if f, ok := toFloat(v); ok {
			return f != 0
		}
		return false
	}
}

// Float reads a numeric option.
func (c Config) Float(key string) (float64, bool) {
	v, ok := c[key]
	if !ok {
		return 0, false
	}
	if f, ok := toFloat(v); ok {
		return f, true
	}
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil {
			return f, true
		}
	}
	return 0, false
}

// Int reads an integer option.
func (c Config) Int(key string) (int, bool) {
	f, ok := c.Float(key)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// String reads a string option.
func (c Config) String(key string) (string, bool) {
	v, ok := c[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Strings reads a list-of-strings option, accepting []string, []any with
// string elements, or a comma-separated string.
func (c Config) Strings(key string) ([]string, bool) {
	v, ok := c[key]
	if !ok {
		return nil, false
	}
	switch t := v.(type) {
	case []string:
		return append([]string(nil), t...), true
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	case string:
		parts := strings.Split(t, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// Value reads a raw option value.
func (c Config) Value(key string) any {
	return c[key]
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// Option is a single selectable choice for select-style fields. Disabled
// options stay visible in the UI but no longer form part of the valid value
// set.
type Option struct {
	Value    string `json:"value" yaml:"value"`
	Label    string `json:"label" yaml:"label"`
	Disabled bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// Options reads the "options" configuration entry. Plain strings become
// options whose value doubles as the label.
func (c Config) Options() []Option {
	raw, ok := c["options"]
	if !ok {
		return nil
	}
	switch t := raw.(type) {
	case []Option:
		return append([]Option(nil), t...)
	case []string:
		out := make([]Option, 0, len(t))
		for _, s := range t {
			out = append(out, Option{Value: s, Label: s})
		}
		return out
	case []any:
		out := make([]Option, 0, len(t))
		for _, item := range t {
			if opt, ok := optionFrom(item); ok {
				out = append(out, opt)
			}
		}
		return out
	default:
		return nil
	}
}

func optionFrom(item any) (Option, bool) {
	switch t := item.(type) {
	case Option:
		return t, true
	case string:
		return Option{Value: t, Label: t}, true
	case map[string]any:
		cfg := Config(t)
		value, _ := cfg.String("value")
		label, _ := cfg.String("label")
		if label == "" {
			label = value
		}
		if value == "" && label == "" {
			return Option{}, false
		}
		if value == "" {
			value = label
		}
		return Option{Value: value, Label: label, Disabled: cfg.Bool("disabled")}, true
	default:
		return Option{}, false
	}
}

// enabledValues filters the option set down to the values membership checks
// accept. Disabled options are excluded on purpose: a value that matches a
// disabled option is invalid even though the option is listed.
func enabledValues(opts []Option) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		if !o.Disabled {
			out = append(out, o.Value)
		}
	}
	return out
}
