package field

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
	goskema "github.com/reoring/goskema"

	"github.com/goliatone/go-formfield/pkg/fieldschema"
)

var (
	richtextPolicy = bluemonday.UGCPolicy()
	striptagPolicy = bluemonday.StrictPolicy()
)

// RichText holds sanitized HTML. Import runs the markup through a UGC
// sanitizer, so scripts and event handlers never reach the stored value.
// Presentation strips tags entirely.
type RichText struct {
	Base
}

// NewRichText constructs a richtext field. Configuration: required,
// maxLength (measured on the plain-text projection).
func NewRichText(name, label string, cfg Config) *RichText {
	return &RichText{Base: NewBase(KindRichText, name, label, cfg)}
}

func (r *RichText) Schema() goskema.Schema[any] {
	s := fieldschema.String().Format("html")
	if r.required() {
		s = s.Check("required", func(raw string) bool {
			return strings.TrimSpace(plainText(raw)) != ""
		})
	}
	if max, ok := r.Config().Int("maxLength"); ok {
		s = s.Check("text too long", func(raw string) bool {
			return len([]rune(plainText(raw))) <= max
		})
	}
	return fieldschema.Required(s, r.required())
}

func plainText(html string) string {
	return striptagPolicy.Sanitize(html)
}

func (r *RichText) NewState(initial any) State {
	return NewValueState(r, initial)
}

func (r *RichText) Present(v any) string {
	s, ok := v.(string)
	if !ok {
		return Placeholder
	}
	text := strings.TrimSpace(plainText(s))
	if text == "" {
		return Placeholder
	}
	return text
}

// FilterPreview truncates the plain-text projection to keep chips short.
func (r *RichText) FilterPreview(v any) (string, bool) {
	text := r.Present(v)
	if text == Placeholder {
		return "", false
	}
	const maxPreview = 40
	runes := []rune(text)
	if len(runes) > maxPreview {
		return string(runes[:maxPreview]) + "…", true
	}
	return text, true
}

func (r *RichText) ImportDetailed(raw any) ImportResult {
	return importWith(r, raw, func(raw any) (any, bool) {
		s, ok := raw.(string)
		if !ok {
			return nil, false
		}
		return richtextPolicy.Sanitize(s), true
	})
}
