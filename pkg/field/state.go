package field

import (
	"context"

	"github.com/goliatone/go-formfield/pkg/fieldschema"
)

// State is the per-session editing state every field kind produces: a current
// value, a touched flag, and validity/error projections recomputed
// synchronously from the current contents on every read. Error is non-empty
// only when the state is both touched and invalid; Valid ignores touched so
// submit-time validation can run fields the user never visited.
type State interface {
	Field() Field
	Value() any
	Set(v any)
	Touched() bool
	Touch()
	Valid() bool
	Error() (string, bool)
	Reset()
}

// ValueState is the scalar State implementation: one value cell, one touched
// cell, pull-based validity.
type ValueState struct {
	field   Field
	initial any
	value   *Cell[any]
	touched *Cell[bool]
}

// NewValueState creates editing state for f. A nil initial falls back to the
// "default" configuration entry. The initial value is captured for Reset.
func NewValueState(f Field, initial any) *ValueState {
	if initial == nil {
		initial = f.Config().Value("default")
	}
	return &ValueState{
		field:   f,
		initial: initial,
		value:   NewCell[any](initial),
		touched: NewCell(false),
	}
}

func (s *ValueState) Field() Field { return s.field }

// Value returns the current value cell contents.
func (s *ValueState) Value() any { return s.value.Get() }

// Set writes the value cell.
func (s *ValueState) Set(v any) { s.value.Set(v) }

// ValueCell exposes the underlying cell for hosts that bind inputs directly.
func (s *ValueState) ValueCell() *Cell[any] { return s.value }

func (s *ValueState) Touched() bool { return s.touched.Get() }

// Touch marks the state as interacted with, surfacing any pending error.
func (s *ValueState) Touch() { s.touched.Set(true) }

// Valid revalidates the current value against a freshly built schema. It
// depends only on the value cell, never on touched.
func (s *ValueState) Valid() bool {
	_, err := s.field.Schema().Parse(context.Background(), s.value.Get())
	return err == nil
}

// Error returns the first validation failure's message once the state has
// been touched. Untouched states never report an error, whatever the value.
func (s *ValueState) Error() (string, bool) {
	if !s.touched.Get() {
		return "", false
	}
	msg, ok := firstMessage(s.field, s.value.Get())
	return msg, ok
}

// Reset restores the captured initial value and clears the touched flag.
func (s *ValueState) Reset() {
	s.value.Set(s.initial)
	s.touched.Set(false)
}

func firstMessage(f Field, v any) (string, bool) {
	_, err := f.Schema().Parse(context.Background(), v)
	if err == nil {
		return "", false
	}
	if issue, ok := fieldschema.First(err); ok {
		return issue.Message, true
	}
	return err.Error(), true
}
