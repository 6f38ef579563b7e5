package field

import (
	"strings"
	"unicode"

	goskema "github.com/reoring/goskema"

	"github.com/goliatone/go-formfield/pkg/fieldschema"
)

// Boolean is the checkbox field. Under required semantics the accepted value
// set is {true}: false is well-typed but invalid, which is what consent
// checkboxes need. Booleans never accept nil, even when optional: an
// unchecked box reads false.
type Boolean struct {
	Base
}

// NewBoolean constructs a boolean field. Configuration: required, trueLabel,
// falseLabel.
func NewBoolean(name, label string, cfg Config) *Boolean {
	return &Boolean{Base: NewBase(KindBoolean, name, label, cfg)}
}

func (b *Boolean) Schema() goskema.Schema[any] {
	s := fieldschema.Bool()
	if b.required() {
		s = s.TrueOnly()
	}
	return fieldschema.Required(s, b.required())
}

// NewState defaults the value to false rather than nil so a fresh checkbox
// is a well-typed unchecked box.
func (b *Boolean) NewState(initial any) State {
	if initial == nil && b.Config().Value("default") == nil {
		initial = false
	}
	return NewValueState(b, initial)
}

func (b *Boolean) Present(v any) string {
	val, ok := v.(bool)
	if !ok {
		return Placeholder
	}
	trueLabel, _ := b.Config().String("trueLabel")
	falseLabel, _ := b.Config().String("falseLabel")
	if trueLabel == "" {
		trueLabel = "Yes"
	}
	if falseLabel == "" {
		falseLabel = "No"
	}
	if val {
		return trueLabel
	}
	return falseLabel
}

func (b *Boolean) ImportDetailed(raw any) ImportResult {
	return importWith(b, raw, coerceBool)
}

// coerceBool recognizes booleans, the exact numerics 1 and 0, and the
// textual spellings true/1/evet and false/0/hayır case-insensitively.
// No other number or string coerces. Lowering uses the Turkish case table
// so dotless I folds correctly ("HAYIR" reads hayır, not hayir); the
// ASCII-keyboard spelling hayir is accepted alongside.
func coerceBool(raw any) (any, bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case string:
		switch strings.ToLowerSpecial(unicode.TurkishCase, strings.TrimSpace(v)) {
		case "true", "1", "evet":
			return true, true
		case "false", "0", "hayır", "hayir":
			return false, true
		default:
			return nil, false
		}
	default:
		if f, ok := toFloat(raw); ok {
			switch f {
			case 1:
				return true, true
			case 0:
				return false, true
			}
		}
		return nil, false
	}
}
