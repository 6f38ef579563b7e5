package fieldschema

import (
	"context"

	goskema "github.com/reoring/goskema"
	"github.com/reoring/goskema/i18n"
	js "github.com/reoring/goskema/jsonschema"
)

var nilCtx = context.Background()

// Required is the single control point for optional-vs-required semantics.
// When required is true the schema is used unchanged; otherwise it is widened
// to accept nil. Schemas marked nil-strict (booleans) keep rejecting nil
// regardless. Every field type routes its base schema through here exactly
// once.
func Required(s goskema.Schema[any], required bool) goskema.Schema[any] {
	if required {
		return s
	}
	if rb, ok := s.(*Schema); ok && rb.nilStrict {
		return s
	}
	return optionalSchema{inner: s}
}

type optionalSchema struct {
	inner goskema.Schema[any]
}

func (o optionalSchema) Parse(ctx context.Context, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	return o.inner.Parse(ctx, v)
}

func (o optionalSchema) ParseWithMeta(ctx context.Context, v any) (goskema.Decoded[any], error) {
	if v == nil {
		pm := goskema.PresenceMap{"/": goskema.PresenceSeen | goskema.PresenceWasNull}
		return goskema.Decoded[any]{Value: nil, Presence: pm}, nil
	}
	return o.inner.ParseWithMeta(ctx, v)
}

func (o optionalSchema) TypeCheck(ctx context.Context, v any) error {
	if v == nil {
		return nil
	}
	return o.inner.TypeCheck(ctx, v)
}

func (o optionalSchema) RuleCheck(ctx context.Context, v any) error {
	if v == nil {
		return nil
	}
	return o.inner.RuleCheck(ctx, v)
}

func (o optionalSchema) Validate(ctx context.Context, v any) error {
	if v == nil {
		return nil
	}
	return o.inner.Validate(ctx, v)
}

func (o optionalSchema) ValidateValue(ctx context.Context, v any) error {
	return o.Validate(ctx, v)
}

func (o optionalSchema) JSONSchema() (*js.Schema, error) {
	return o.inner.JSONSchema()
}

// AsAny adapts a typed goskema schema to the any-typed contract surface the
// field types share.
func AsAny[T any](s goskema.Schema[T]) goskema.Schema[any] {
	return anySchema[T]{inner: s}
}

type anySchema[T any] struct {
	inner goskema.Schema[T]
}

func (a anySchema[T]) Parse(ctx context.Context, v any) (any, error) {
	out, err := a.inner.Parse(ctx, v)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a anySchema[T]) ParseWithMeta(ctx context.Context, v any) (goskema.Decoded[any], error) {
	d, err := a.inner.ParseWithMeta(ctx, v)
	if err != nil {
		return goskema.Decoded[any]{}, err
	}
	return goskema.Decoded[any]{Value: d.Value, Presence: d.Presence}, nil
}

func (a anySchema[T]) TypeCheck(ctx context.Context, v any) error {
	return a.inner.TypeCheck(ctx, v)
}

func (a anySchema[T]) RuleCheck(ctx context.Context, v any) error {
	return a.inner.RuleCheck(ctx, v)
}

func (a anySchema[T]) Validate(ctx context.Context, v any) error {
	return a.inner.Validate(ctx, v)
}

func (a anySchema[T]) ValidateValue(ctx context.Context, v any) error {
	tv, ok := v.(T)
	if !ok {
		return goskema.Issues{goskema.Issue{Path: "/", Code: goskema.CodeInvalidType, Message: i18n.T(goskema.CodeInvalidType, nil)}}
	}
	return a.inner.ValidateValue(ctx, tv)
}

func (a anySchema[T]) JSONSchema() (*js.Schema, error) {
	return a.inner.JSONSchema()
}
