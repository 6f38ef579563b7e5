package fieldschema

import (
	goskema "github.com/reoring/goskema"
	"github.com/reoring/goskema/dsl"
)

// Child pairs a key with its schema. Order carries the declaration order of
// the enclosing composite; goskema evaluates keys sorted, so callers that
// need declaration-order error selection walk their own child list.
type Child struct {
	Name     string
	Schema   goskema.Schema[any]
	Required bool
}

// ObjectOf merges child schemas into one structural object schema. Unknown
// keys are stripped so best-effort imports survive extra payload fields.
// Missing required keys fail with the required code; present keys are
// validated by the child schema with issue paths rebased under the key.
func ObjectOf(children []Child) goskema.Schema[map[string]any] {
	b := dsl.Object().UnknownStrip()
	for _, c := range children {
		b.Field(c.Name, dsl.SchemaOf[any](c.Schema))
		if c.Required {
			b.Require(c.Name)
		}
	}
	return b.MustBuild()
}

// Object is ObjectOf widened to the any-typed contract surface.
func Object(children []Child) goskema.Schema[any] {
	return AsAny[map[string]any](ObjectOf(children))
}

// Rows builds an array-of-object schema from a row schema with optional item
// bounds; pass a negative bound to leave it open. Misconfigured bounds
// (min > max) simply produce a schema no non-empty value satisfies.
func Rows(row goskema.Schema[map[string]any], min, max int) goskema.Schema[any] {
	ab := dsl.Array[map[string]any](row)
	if min >= 0 {
		ab = ab.Min(min)
	}
	if max >= 0 {
		ab = ab.Max(max)
	}
	return AsAny[[]map[string]any](ab)
}
