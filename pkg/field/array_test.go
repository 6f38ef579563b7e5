package field

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func contactsArray(t *testing.T, cfg Config) *Array {
	t.Helper()
	name := NewText("name", "Name", Config{"required": true})
	phone := NewPhone("phone", "Phone", nil)
	a, err := NewArray("contacts", "Contacts", cfg, []Field{name, phone})
	if err != nil {
		t.Fatalf("NewArray: %v", err)
	}
	return a
}

func TestArrayAddRemoveBounds(t *testing.T) {
	a := contactsArray(t, Config{"minItems": 1, "maxItems": 2})
	st := NewArrayState(a, nil)

	// Creation pads to the minimum.
	if st.Count() != 1 {
		t.Fatalf("initial count = %d, want 1", st.Count())
	}
	if !st.CanAdd() || st.CanRemove() {
		t.Fatalf("bounds: CanAdd=%v CanRemove=%v", st.CanAdd(), st.CanRemove())
	}

	row := st.Add(nil)
	if row == nil || st.Count() != 2 {
		t.Fatalf("Add failed: count = %d", st.Count())
	}

	// At max, add is a no-op, not an error.
	if got := st.Add(nil); got != nil || st.Count() != 2 {
		t.Fatalf("Add beyond max changed state: count = %d", st.Count())
	}

	if !st.Remove(row.ID) || st.Count() != 1 {
		t.Fatalf("Remove failed: count = %d", st.Count())
	}

	// At min, remove is a no-op.
	last := st.Rows()[0]
	if st.Remove(last.ID) || st.Count() != 1 {
		t.Fatalf("Remove below min changed state: count = %d", st.Count())
	}
}

func TestArrayRowIDsStableAndUnique(t *testing.T) {
	a := contactsArray(t, nil)
	st := NewArrayState(a, nil)

	first := st.Add(nil)
	second := st.Add(nil)
	third := st.Add(nil)
	if first.ID == second.ID || second.ID == third.ID || first.ID == third.ID {
		t.Fatal("row ids collide")
	}

	// Reordering preserves id-to-row association.
	if cell, _ := first.Cell("name"); cell != nil {
		cell.Set("Ayşe")
	}
	if !st.Move(0, 2) {
		t.Fatal("Move failed")
	}
	rows := st.Rows()
	if rows[2].ID != first.ID {
		t.Errorf("moved row lost its id")
	}
	cell, _ := rows[2].Cell("name")
	if cell.Value() != "Ayşe" {
		t.Errorf("moved row lost its value: %v", cell.Value())
	}

	// Removing and re-adding never recycles an id.
	removed := rows[0].ID
	st.Remove(removed)
	fresh := st.Add(nil)
	if fresh.ID == removed {
		t.Error("row id recycled")
	}
}

func TestArrayMoveOutOfRange(t *testing.T) {
	a := contactsArray(t, nil)
	st := NewArrayState(a, nil)
	st.Add(nil)
	if st.Move(0, 5) || st.Move(-1, 0) || st.Move(0, 0) {
		t.Error("out-of-range or no-op move reported success")
	}
}

// clear() with min > 0 leaves exactly min blank rows.
func TestArrayClearRefillsToMin(t *testing.T) {
	a := contactsArray(t, Config{"minItems": 2})
	st := NewArrayState(a, []map[string]any{
		{"name": "Ali"}, {"name": "Veli"}, {"name": "Deniz"},
	})
	if st.Count() != 3 {
		t.Fatalf("seeded count = %d", st.Count())
	}

	st.Clear()
	if st.Count() != 2 {
		t.Fatalf("cleared count = %d, want 2", st.Count())
	}
	for _, row := range st.Rows() {
		cell, _ := row.Cell("name")
		if cell.Value() != nil {
			t.Errorf("clear left a non-blank row: %v", cell.Value())
		}
	}

	unbounded := contactsArray(t, nil)
	ust := NewArrayState(unbounded, []map[string]any{{"name": "Ali"}})
	ust.Clear()
	if ust.Count() != 0 {
		t.Errorf("clear on unbounded array left %d rows", ust.Count())
	}
}

func TestArrayValidityAndTouch(t *testing.T) {
	a := contactsArray(t, nil)
	st := NewArrayState(a, []map[string]any{{"name": "Ali"}, {}})

	if st.Valid() {
		t.Error("array with an invalid row reports valid")
	}
	if _, ok := st.Error(); ok {
		t.Error("untouched array surfaced an error")
	}
	st.TouchAll()
	if _, ok := st.Error(); !ok {
		t.Error("touched invalid array surfaced no error")
	}

	cell, _ := st.Rows()[1].Cell("name")
	cell.Set("Veli")
	if !st.Valid() {
		t.Error("repaired array still invalid")
	}
}

func TestArrayRequiredMeansNonEmpty(t *testing.T) {
	a := contactsArray(t, Config{"required": true})
	if got := Import(a, []any{}); got != nil {
		t.Errorf("empty list imported on required array: %v", got)
	}
	got := Import(a, []any{map[string]any{"name": "Ali"}})
	if got == nil {
		t.Fatal("valid single-row list rejected")
	}
}

func TestArrayImportExport(t *testing.T) {
	a := contactsArray(t, nil)
	got := Import(a, []any{
		map[string]any{"name": "Ali", "phone": "0532 123 45 67"},
	})
	rows, ok := got.([]map[string]any)
	if !ok || len(rows) != 1 {
		t.Fatalf("Import = %v", got)
	}
	if rows[0]["phone"] != "5321234567" {
		t.Errorf("phone not normalized on import: %v", rows[0]["phone"])
	}

	exported := a.Export(rows)
	want := []map[string]any{{"name": "Ali", "phone": "+905321234567"}}
	if diff := cmp.Diff(want, exported); diff != "" {
		t.Fatalf("Export mismatch (-want +got):\n%s", diff)
	}

	if got := Import(a, "not a list"); got != nil {
		t.Errorf("non-list imported: %v", got)
	}
}
