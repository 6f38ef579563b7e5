package field

import (
	"fmt"
	"strings"

	goskema "github.com/reoring/goskema"

	"github.com/goliatone/go-formfield/pkg/fieldschema"
)

// Group combines a fixed, named set of child fields into one object-valued
// field. The child list is ordered; aggregation surfaces (first error,
// values) follow declaration order.
type Group struct {
	Base
	children []Field
}

// NewGroup constructs a group field. Duplicate child names are a
// construction error because the object schema and the values map both key
// by name.
func NewGroup(name, label string, cfg Config, children []Field) (*Group, error) {
	seen := make(map[string]struct{}, len(children))
	for _, child := range children {
		if _, dup := seen[child.Name()]; dup {
			return nil, fmt.Errorf("field: group %q has duplicate child %q", name, child.Name())
		}
		seen[child.Name()] = struct{}{}
	}
	return &Group{
		Base:     NewBase(KindGroup, name, label, cfg),
		children: children,
	}, nil
}

// Children returns the child fields in declaration order.
func (g *Group) Children() []Field {
	return append([]Field(nil), g.children...)
}

// Child looks a child up by name.
func (g *Group) Child(name string) (Field, bool) {
	for _, c := range g.children {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

func (g *Group) Schema() goskema.Schema[any] {
	kids := make([]fieldschema.Child, 0, len(g.children))
	for _, c := range g.children {
		kids = append(kids, fieldschema.Child{
			Name:     c.Name(),
			Schema:   c.Schema(),
			Required: c.Config().Bool("required"),
		})
	}
	return fieldschema.Required(fieldschema.Object(kids), g.required())
}

func (g *Group) NewState(initial any) State {
	return NewGroupState(g, initial)
}

// Present joins the non-empty child presentations.
func (g *Group) Present(v any) string {
	values, ok := v.(map[string]any)
	if !ok || len(values) == 0 {
		return Placeholder
	}
	parts := make([]string, 0, len(g.children))
	for _, c := range g.children {
		cv, present := values[c.Name()]
		if !present || isEmpty(cv) {
			continue
		}
		parts = append(parts, c.Present(cv))
	}
	if len(parts) == 0 {
		return Placeholder
	}
	return strings.Join(parts, ", ")
}

// Export builds a new object with every present child exported under its
// own name. Keys outside the child set are dropped.
func (g *Group) Export(v any) any {
	values, ok := v.(map[string]any)
	if !ok {
		return v
	}
	out := make(map[string]any, len(g.children))
	for _, c := range g.children {
		if cv, present := values[c.Name()]; present && cv != nil {
			out[c.Name()] = c.Export(cv)
		}
	}
	return out
}

// ImportDetailed delegates per child. A nil or non-object root fails as a
// whole; individual child failures leave that key absent and let the object
// schema decide whether the result still stands.
func (g *Group) ImportDetailed(raw any) ImportResult {
	return importWith(g, raw, func(raw any) (any, bool) {
		values, ok := asObject(raw)
		if !ok {
			return nil, false
		}
		out := make(map[string]any, len(g.children))
		for _, c := range g.children {
			cv, present := values[c.Name()]
			if !present || cv == nil {
				continue
			}
			if imported := Import(c, cv); imported != nil {
				out[c.Name()] = imported
			}
		}
		return out, true
	})
}

func asObject(raw any) (map[string]any, bool) {
	switch t := raw.(type) {
	case map[string]any:
		return t, true
	case Config:
		return map[string]any(t), true
	default:
		return nil, false
	}
}

// GroupState aggregates one child State per child field. It satisfies the
// State interface: Value and Set work on the whole values map, while the
// group-specific surface mutates children individually.
type GroupState struct {
	group    *Group
	initial  map[string]any
	children map[string]State
}

// NewGroupState creates editing state for every child. A map initial seeds
// the matching children; anything else starts them from their own defaults.
func NewGroupState(g *Group, initial any) *GroupState {
	values, _ := asObject(initial)
	children := make(map[string]State, len(g.children))
	for _, c := range g.children {
		children[c.Name()] = c.NewState(values[c.Name()])
	}
	return &GroupState{group: g, initial: values, children: children}
}

func (s *GroupState) Field() Field { return s.group }

// Child returns one child's editing state.
func (s *GroupState) Child(name string) (State, bool) {
	cs, ok := s.children[name]
	return cs, ok
}

// Values snapshots every child's current value keyed by name.
func (s *GroupState) Values() map[string]any {
	out := make(map[string]any, len(s.children))
	for _, c := range s.group.children {
		out[c.Name()] = s.children[c.Name()].Value()
	}
	return out
}

// Value returns the same snapshot as Values, satisfying State.
func (s *GroupState) Value() any { return s.Values() }

// Set writes the whole values map by repeated SetValue. Non-map input is
// ignored.
func (s *GroupState) Set(v any) {
	if values, ok := asObject(v); ok {
		s.PatchValues(values)
	}
}

// SetValue writes one child's value. Unknown names are ignored.
func (s *GroupState) SetValue(name string, v any) {
	if cs, ok := s.children[name]; ok {
		cs.Set(v)
	}
}

// PatchValues writes several children by repeated SetValue.
func (s *GroupState) PatchValues(partial map[string]any) {
	for name, v := range partial {
		s.SetValue(name, v)
	}
}

// Touched reports whether any child has been touched.
func (s *GroupState) Touched() bool {
	for _, cs := range s.children {
		if cs.Touched() {
			return true
		}
	}
	return false
}

// Touch marks every child touched, same as TouchAll.
func (s *GroupState) Touch() { s.TouchAll() }

// TouchAll marks every child touched so pending errors surface before
// submit.
func (s *GroupState) TouchAll() {
	for _, cs := range s.children {
		cs.Touch()
	}
}

// Valid is the logical AND over all children.
func (s *GroupState) Valid() bool {
	for _, c := range s.group.children {
		if !s.children[c.Name()].Valid() {
			return false
		}
	}
	return true
}

// Errors collects each child's surfaced error keyed by name. Children
// without a surfaced error are absent from the map.
func (s *GroupState) Errors() map[string]string {
	out := make(map[string]string)
	for _, c := range s.group.children {
		if msg, ok := s.children[c.Name()].Error(); ok {
			out[c.Name()] = msg
		}
	}
	return out
}

// Error surfaces the first child error in declaration order.
func (s *GroupState) Error() (string, bool) {
	for _, c := range s.group.children {
		if msg, ok := s.children[c.Name()].Error(); ok {
			return msg, true
		}
	}
	return "", false
}

// Reset restores every child to the values captured at state creation and
// clears all touched flags.
func (s *GroupState) Reset() {
	s.ResetTo(s.initial)
}

// ResetTo recreates every child state from the supplied values (nil falls
// back to child defaults) with touched cleared.
func (s *GroupState) ResetTo(values map[string]any) {
	for _, c := range s.group.children {
		s.children[c.Name()] = c.NewState(values[c.Name()])
	}
}
