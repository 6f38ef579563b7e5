package field

import (
	"context"
	"fmt"

	goskema "github.com/reoring/goskema"
	"github.com/reoring/goskema/i18n"

	"github.com/goliatone/go-formfield/pkg/fieldschema"
)

// Placeholder is the fixed stand-in Present renders for empty values.
const Placeholder = "-"

// Field is the contract every field type satisfies. Instances are immutable
// after construction and safe to share across editing sessions.
//
// Schema builds a fresh validation schema from configuration on every call;
// it must stay idempotent and side-effect free because callers invoke it once
// per validation, including mid-keystroke. NewState creates per-session
// editing state. Present renders a value for humans without coercing it.
// Export converts an internal value to its external representation.
// ImportDetailed is the best-effort coercion path from untrusted input; the
// silent variant lives on the package-level Import helper.
type Field interface {
	Name() string
	Label() string
	Kind() string
	Config() Config
	Schema() goskema.Schema[any]
	NewState(initial any) State
	Present(v any) string
	Export(v any) any
	ImportDetailed(raw any) ImportResult
}

// filterPreviewer is the optional capability behind FilterPreview. Types
// whose filter chip differs from their Present rendering implement it.
type filterPreviewer interface {
	FilterPreview(v any) (string, bool)
}

// ImportResult is the discriminated outcome of a detailed import. On
// rejection Issue carries the first schema failure (message, path, code); on
// success Value holds the coerced internal value.
type ImportResult struct {
	OK    bool
	Value any
	Issue *goskema.Issue
}

// Message returns the failure message, or "" for successful results.
func (r ImportResult) Message() string {
	if r.Issue == nil {
		return ""
	}
	return r.Issue.Message
}

// Import coerces raw through f's detailed import path and collapses failure
// to nil, deliberately indistinguishable from an absent optional value.
// Callers that need to tell "absent" from "rejected" use ImportDetailed.
func Import(f Field, raw any) any {
	res := f.ImportDetailed(raw)
	if !res.OK {
		return nil
	}
	return res.Value
}

// FilterPreview returns the short label summarizing an active filter on f,
// or false for empty values so callers can omit the filter chip entirely.
func FilterPreview(f Field, v any) (string, bool) {
	if fp, ok := f.(filterPreviewer); ok {
		return fp.FilterPreview(v)
	}
	if isEmpty(v) {
		return "", false
	}
	return f.Present(v), true
}

// Base carries the immutable (name, label, configuration) triple plus the
// kind discriminant renderers dispatch on. Field types embed it.
type Base struct {
	name  string
	label string
	kind  string
	cfg   Config
}

// NewBase builds the shared definition part of a field instance.
func NewBase(kind, name, label string, cfg Config) Base {
	if cfg == nil {
		cfg = Config{}
	}
	return Base{name: name, label: label, kind: kind, cfg: cfg}
}

func (b Base) Name() string   { return b.name }
func (b Base) Label() string  { return b.label }
func (b Base) Kind() string   { return b.kind }
func (b Base) Config() Config { return b.cfg }

// Export returns the value unchanged; types that normalize on the way out
// shadow this.
func (b Base) Export(v any) any { return v }

func (b Base) required() bool { return b.cfg.Bool("required") }

// String implements fmt.Stringer for log and debug output.
func (b Base) String() string {
	return fmt.Sprintf("%s(%s)", b.kind, b.name)
}

// importWith runs the shared import flow: coerce raw into a typed candidate,
// then validate the candidate against f's schema. A coercion miss and a
// post-parse validation failure travel the same channel, distinguished only
// by the issue's code.
func importWith(f Field, raw any, coerce func(any) (any, bool)) ImportResult {
	var v any
	if raw != nil {
		coerced, ok := coerce(raw)
		if !ok {
			return ImportResult{Issue: &goskema.Issue{
				Path:    "/",
				Code:    goskema.CodeParseError,
				Message: i18n.T(goskema.CodeParseError, nil),
			}}
		}
		v = coerced
	}
	if _, err := f.Schema().Parse(context.Background(), v); err != nil {
		if first, ok := fieldschema.First(err); ok {
			return ImportResult{Issue: &first}
		}
		return ImportResult{Issue: &goskema.Issue{
			Path:    "/",
			Code:    goskema.CodeParseError,
			Message: err.Error(),
		}}
	}
	return ImportResult{OK: true, Value: v}
}

// isEmpty reports whether v renders as absent for preview purposes.
func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []string:
		return len(t) == 0
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}
