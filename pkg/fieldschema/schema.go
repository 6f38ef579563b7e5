package fieldschema

import (
	"context"

	goskema "github.com/reoring/goskema"
	"github.com/reoring/goskema/i18n"
	js "github.com/reoring/goskema/jsonschema"
)

// Rule inspects an already type-checked candidate value and reports zero or
// more issues. Rules may assume the value has the shape the schema's type
// check admits; anything else should be ignored rather than re-reported.
type Rule func(v any) goskema.Issues

// Schema is a rule-backed implementation of goskema.Schema[any]. Parse runs
// the type check followed by every rule in declaration order and returns the
// candidate unchanged on success; it performs no coercion. Field types build
// a fresh Schema on every call so instances stay stateless.
type Schema struct {
	jsType    string
	format    string
	typeCheck Rule
	rules     []Rule
	nilStrict bool
}

var _ goskema.Schema[any] = (*Schema)(nil)

// Rule appends a custom rule and returns the schema for chaining.
func (s *Schema) Rule(r Rule) *Schema {
	if r != nil {
		s.rules = append(s.rules, r)
	}
	return s
}

// Format records a JSON Schema format hint without adding a rule.
func (s *Schema) Format(name string) *Schema {
	s.format = name
	return s
}

func (s *Schema) Parse(ctx context.Context, v any) (any, error) {
	if err := s.Validate(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Schema) ParseWithMeta(ctx context.Context, v any) (goskema.Decoded[any], error) {
	out, err := s.Parse(ctx, v)
	if err != nil {
		return goskema.Decoded[any]{}, err
	}
	pm := goskema.PresenceMap{"/": goskema.PresenceSeen}
	if v == nil {
		pm["/"] |= goskema.PresenceWasNull
	}
	return goskema.Decoded[any]{Value: out, Presence: pm}, nil
}

func (s *Schema) TypeCheck(ctx context.Context, v any) error {
	if s.typeCheck == nil {
		return nil
	}
	if iss := s.typeCheck(v); len(iss) > 0 {
		return iss
	}
	return nil
}

func (s *Schema) RuleCheck(ctx context.Context, v any) error {
	var iss goskema.Issues
	for _, r := range s.rules {
		more := r(v)
		if len(more) == 0 {
			continue
		}
		iss = goskema.AppendIssues(iss, more...)
		if goskema.IsFailFast(ctx) {
			return iss
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func (s *Schema) Validate(ctx context.Context, v any) error {
	if err := s.TypeCheck(ctx, v); err != nil {
		return err
	}
	return s.RuleCheck(ctx, v)
}

func (s *Schema) ValidateValue(ctx context.Context, v any) error {
	return s.Validate(ctx, v)
}

func (s *Schema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: s.jsType, Format: s.format}, nil
}

// Issue builds a single-issue list at the schema root using the translated
// message for code.
func Issue(code string) goskema.Issues {
	return goskema.Issues{goskema.Issue{Path: "/", Code: code, Message: i18n.T(code, nil)}}
}

// IssueMsg builds a single-issue list at the schema root with an explicit
// message, for rules whose failure needs more context than the stock
// translation carries.
func IssueMsg(code, message string) goskema.Issues {
	return goskema.Issues{goskema.Issue{Path: "/", Code: code, Message: message}}
}

// First unwraps the leading issue from a validation error. The second return
// is false when err is nil or carries no goskema issues.
func First(err error) (goskema.Issue, bool) {
	iss, ok := goskema.AsIssues(err)
	if !ok || len(iss) == 0 {
		return goskema.Issue{}, false
	}
	return iss[0], true
}
