package field

import (
	"fmt"

	"github.com/google/uuid"
	goskema "github.com/reoring/goskema"

	"github.com/goliatone/go-formfield/pkg/fieldschema"
)

// Array is a variable-length list of rows, each row holding one editing
// state per item field. Rows carry a generated id that stays attached to
// the row across reorders and is never recycled.
type Array struct {
	Base
	itemFields []Field
}

// NewArray constructs an array field. Item fields describe one row; every
// row shares the same shape. Configuration: required (array non-empty),
// minItems, maxItems. Duplicate item names are a construction error.
func NewArray(name, label string, cfg Config, itemFields []Field) (*Array, error) {
	seen := make(map[string]struct{}, len(itemFields))
	for _, f := range itemFields {
		if _, dup := seen[f.Name()]; dup {
			return nil, fmt.Errorf("field: array %q has duplicate item field %q", name, f.Name())
		}
		seen[f.Name()] = struct{}{}
	}
	return &Array{
		Base:       NewBase(KindArray, name, label, cfg),
		itemFields: itemFields,
	}, nil
}

// ItemFields returns the per-row field set in declaration order.
func (a *Array) ItemFields() []Field {
	return append([]Field(nil), a.itemFields...)
}

// minRows is the configured floor; required alone raises it to one because
// a required array means non-empty, not merely present.
func (a *Array) minRows() int {
	min := 0
	if v, ok := a.Config().Int("minItems"); ok && v > 0 {
		min = v
	}
	if a.required() && min < 1 {
		min = 1
	}
	return min
}

// maxRows returns -1 when unbounded.
func (a *Array) maxRows() int {
	if v, ok := a.Config().Int("maxItems"); ok && v >= 0 {
		return v
	}
	return -1
}

func (a *Array) rowSchema() goskema.Schema[map[string]any] {
	kids := make([]fieldschema.Child, 0, len(a.itemFields))
	for _, f := range a.itemFields {
		kids = append(kids, fieldschema.Child{
			Name:     f.Name(),
			Schema:   f.Schema(),
			Required: f.Config().Bool("required"),
		})
	}
	return fieldschema.ObjectOf(kids)
}

func (a *Array) Schema() goskema.Schema[any] {
	s := fieldschema.Rows(a.rowSchema(), a.minRows(), a.maxRows())
	return fieldschema.Required(s, a.required())
}

func (a *Array) NewState(initial any) State {
	return NewArrayState(a, initial)
}

func (a *Array) Present(v any) string {
	rows, ok := asRowList(v)
	if !ok || len(rows) == 0 {
		return Placeholder
	}
	if len(rows) == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", len(rows))
}

// Export maps every row through the item fields' exporters.
func (a *Array) Export(v any) any {
	rows, ok := asRowList(v)
	if !ok {
		return v
	}
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		exported := make(map[string]any, len(a.itemFields))
		for _, f := range a.itemFields {
			if cv, present := row[f.Name()]; present && cv != nil {
				exported[f.Name()] = f.Export(cv)
			}
		}
		out = append(out, exported)
	}
	return out
}

// ImportDetailed delegates per row and per item field. Non-list roots fail
// as a whole.
func (a *Array) ImportDetailed(raw any) ImportResult {
	return importWith(a, raw, func(raw any) (any, bool) {
		rows, ok := asRowList(raw)
		if !ok {
			return nil, false
		}
		out := make([]map[string]any, 0, len(rows))
		for _, row := range rows {
			imported := make(map[string]any, len(a.itemFields))
			for _, f := range a.itemFields {
				cv, present := row[f.Name()]
				if !present || cv == nil {
					continue
				}
				if v := Import(f, cv); v != nil {
					imported[f.Name()] = v
				}
			}
			out = append(out, imported)
		}
		return out, true
	})
}

func asRowList(raw any) ([]map[string]any, bool) {
	switch t := raw.(type) {
	case []map[string]any:
		return t, true
	case []any:
		out := make([]map[string]any, 0, len(t))
		for _, item := range t {
			row, ok := asObject(item)
			if !ok {
				return nil, false
			}
			out = append(out, row)
		}
		return out, true
	default:
		return nil, false
	}
}

// ArrayRow is one row of array editing state: a stable id plus one State
// per item field.
type ArrayRow struct {
	ID    string
	cells map[string]State
}

// Cell returns the editing state for one item field of this row.
func (r *ArrayRow) Cell(name string) (State, bool) {
	s, ok := r.cells[name]
	return s, ok
}

// ArrayState manages the row list. Bounds violations are no-ops, never
// errors: add at the maximum and remove at the minimum both leave the list
// unchanged.
type ArrayState struct {
	array   *Array
	initial []map[string]any
	rows    []*ArrayRow
}

// NewArrayState creates editing state seeded from a row-list initial; any
// other initial starts empty. The list is then padded up to the configured
// minimum with blank rows.
func NewArrayState(a *Array, initial any) *ArrayState {
	seed, _ := asRowList(initial)
	s := &ArrayState{array: a, initial: seed}
	for _, row := range seed {
		s.rows = append(s.rows, s.newRow(row))
	}
	s.fillToMin()
	return s
}

func (s *ArrayState) newRow(values map[string]any) *ArrayRow {
	row := &ArrayRow{
		ID:    uuid.NewString(),
		cells: make(map[string]State, len(s.array.itemFields)),
	}
	for _, f := range s.array.itemFields {
		var initial any
		if values != nil {
			initial = values[f.Name()]
		}
		row.cells[f.Name()] = f.NewState(initial)
	}
	return row
}

func (s *ArrayState) fillToMin() {
	for min := s.array.minRows(); len(s.rows) < min; {
		s.rows = append(s.rows, s.newRow(nil))
	}
}

func (s *ArrayState) Field() Field { return s.array }

// Rows returns the current rows in order. The slice is a copy; the rows are
// the live states.
func (s *ArrayState) Rows() []*ArrayRow {
	return append([]*ArrayRow(nil), s.rows...)
}

// Count is the current row count.
func (s *ArrayState) Count() int { return len(s.rows) }

// CanAdd reports whether Add would append a row.
func (s *ArrayState) CanAdd() bool {
	max := s.array.maxRows()
	return max < 0 || len(s.rows) < max
}

// CanRemove reports whether Remove would delete a row.
func (s *ArrayState) CanRemove() bool {
	return len(s.rows) > s.array.minRows()
}

// Add appends a new row seeded from initial. At the configured maximum it
// is a no-op and returns nil.
func (s *ArrayState) Add(initial map[string]any) *ArrayRow {
	if !s.CanAdd() {
		return nil
	}
	row := s.newRow(initial)
	s.rows = append(s.rows, row)
	return row
}

// Remove deletes the row with the given id. Unknown ids and removals that
// would drop below the minimum are no-ops.
func (s *ArrayState) Remove(id string) bool {
	if !s.CanRemove() {
		return false
	}
	for i, row := range s.rows {
		if row.ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return true
		}
	}
	return false
}

// Move splices the row at from to position to, keeping id-to-row
// association intact. Out-of-range indexes are no-ops.
func (s *ArrayState) Move(from, to int) bool {
	if from < 0 || from >= len(s.rows) || to < 0 || to >= len(s.rows) || from == to {
		return false
	}
	row := s.rows[from]
	s.rows = append(s.rows[:from], s.rows[from+1:]...)
	s.rows = append(s.rows[:to], append([]*ArrayRow{row}, s.rows[to:]...)...)
	return true
}

// Clear empties the list, then refills to the configured minimum with blank
// rows so a floored array never sits in an invalid empty state.
func (s *ArrayState) Clear() {
	s.rows = nil
	s.fillToMin()
}

// Values snapshots every row's current values in order.
func (s *ArrayState) Values() []map[string]any {
	out := make([]map[string]any, 0, len(s.rows))
	for _, row := range s.rows {
		values := make(map[string]any, len(row.cells))
		for _, f := range s.array.itemFields {
			values[f.Name()] = row.cells[f.Name()].Value()
		}
		out = append(out, values)
	}
	return out
}

// Value returns the same snapshot as Values, satisfying State.
func (s *ArrayState) Value() any { return s.Values() }

// Set replaces the whole row list from a row-list value. Other shapes are
// ignored.
func (s *ArrayState) Set(v any) {
	rows, ok := asRowList(v)
	if !ok {
		return
	}
	s.rows = nil
	for _, row := range rows {
		s.rows = append(s.rows, s.newRow(row))
	}
	s.fillToMin()
}

// Touched reports whether any cell in any row has been touched.
func (s *ArrayState) Touched() bool {
	for _, row := range s.rows {
		for _, cell := range row.cells {
			if cell.Touched() {
				return true
			}
		}
	}
	return false
}

// Touch marks every cell in every row touched, same as TouchAll.
func (s *ArrayState) Touch() { s.TouchAll() }

// TouchAll marks every cell in every row touched.
func (s *ArrayState) TouchAll() {
	for _, row := range s.rows {
		for _, cell := range row.cells {
			cell.Touch()
		}
	}
}

// Valid requires every cell valid and the row count within bounds.
func (s *ArrayState) Valid() bool {
	if len(s.rows) < s.array.minRows() {
		return false
	}
	if max := s.array.maxRows(); max >= 0 && len(s.rows) > max {
		return false
	}
	for _, row := range s.rows {
		for _, f := range s.array.itemFields {
			if !row.cells[f.Name()].Valid() {
				return false
			}
		}
	}
	return true
}

// Error surfaces the first cell error in row order, then field declaration
// order within the row.
func (s *ArrayState) Error() (string, bool) {
	for _, row := range s.rows {
		for _, f := range s.array.itemFields {
			if msg, ok := row.cells[f.Name()].Error(); ok {
				return msg, true
			}
		}
	}
	return "", false
}

// Reset rebuilds the row list from the initial rows captured at state
// creation. Every row gets a fresh id.
func (s *ArrayState) Reset() {
	s.rows = nil
	for _, row := range s.initial {
		s.rows = append(s.rows, s.newRow(row))
	}
	s.fillToMin()
}
