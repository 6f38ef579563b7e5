package field

import (
	"bytes"
	"encoding/json"

	goskema "github.com/reoring/goskema"

	"github.com/goliatone/go-formfield/pkg/fieldschema"
)

// JSON holds an arbitrary JSON document as its source text. Validation is
// purely syntactic; structured input (maps, slices) imports by marshaling.
type JSON struct {
	Base
}

// NewJSON constructs a json field. Configuration: required, maxLength.
func NewJSON(name, label string, cfg Config) *JSON {
	return &JSON{Base: NewBase(KindJSON, name, label, cfg)}
}

func (j *JSON) Schema() goskema.Schema[any] {
	s := stringSchemaFrom(j.Config(), j.required()).
		Format("json").
		Check("invalid json", func(raw string) bool {
			return json.Valid([]byte(raw))
		})
	return fieldschema.Required(s, j.required())
}

func (j *JSON) NewState(initial any) State {
	return NewValueState(j, initial)
}

// Present pretty-prints the document; malformed text renders as-is.
func (j *JSON) Present(v any) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return Placeholder
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(s), "", "  "); err != nil {
		return s
	}
	return buf.String()
}

// FilterPreview stays on one line.
func (j *JSON) FilterPreview(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(s)); err != nil {
		return s, true
	}
	return buf.String(), true
}

func (j *JSON) ImportDetailed(raw any) ImportResult {
	return importWith(j, raw, func(raw any) (any, bool) {
		switch v := raw.(type) {
		case string:
			return v, true
		case []byte:
			return string(v), true
		case map[string]any, []any:
			b, err := json.Marshal(v)
			if err != nil {
				return nil, false
			}
			return string(b), true
		default:
			return nil, false
		}
	})
}
