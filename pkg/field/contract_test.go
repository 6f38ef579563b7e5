package field

import (
	"testing"
)

// The silent and detailed import paths always agree: Import returns nil on
// every rejection, and non-nil values only come from accepted imports.
func TestImportPathsAgree(t *testing.T) {
	fields := []Field{
		NewText("t", "T", Config{"required": true, "maxLength": 4}),
		NewNumber("n", "N", Config{"min": 0}),
		NewBoolean("b", "B", Config{"required": true}),
		NewDate("d", "D", Config{"max": "today"}),
		NewEmail("e", "E", nil),
		NewSelect("s", "S", Config{"options": []string{"a", "b"}}),
		NewMultiSelect("m", "M", Config{"options": []string{"a", "b"}}),
		NewPhone("p", "P", nil),
		NewColor("c", "C", nil),
		NewSlug("sl", "SL", nil),
	}
	raws := []any{
		nil, "", "a", "abcdef", "42", -5, true, false, "evet", "maybe",
		"2024-05-17", "31.02.2024", "17.05.2099", "x@y.co", "a,b", "purple",
		"0532 123 45 67", "#abc", "Başlık", []string{"a", "z"}, []any{1, 2},
		map[string]any{"k": "v"},
	}
	for _, f := range fields {
		for _, raw := range raws {
			silent := Import(f, raw)
			detailed := f.ImportDetailed(raw)
			if (silent != nil) != detailed.OK && !(detailed.OK && detailed.Value == nil) {
				t.Errorf("%s: Import(%v)=%v disagrees with detailed OK=%v", f, raw, silent, detailed.OK)
			}
			if !detailed.OK && detailed.Issue == nil {
				t.Errorf("%s: rejected import of %v carries no issue", f, raw)
			}
			if detailed.OK && detailed.Issue != nil {
				t.Errorf("%s: accepted import of %v carries issue %v", f, raw, detailed.Issue)
			}
		}
	}
}

func TestFilterPreviewDefaults(t *testing.T) {
	f := NewText("t", "T", nil)
	if preview, ok := FilterPreview(f, "hello"); !ok || preview != "hello" {
		t.Errorf("FilterPreview = %q, %v", preview, ok)
	}
	// Empty values omit the chip entirely.
	for _, v := range []any{nil, "", []string{}, map[string]any{}} {
		if _, ok := FilterPreview(f, v); ok {
			t.Errorf("FilterPreview(%v) produced a chip", v)
		}
	}
}

func TestValueStateLifecycle(t *testing.T) {
	f := NewText("t", "T", Config{"required": true})
	st := f.NewState("hello")

	if st.Value() != "hello" {
		t.Fatalf("initial value = %v", st.Value())
	}
	if !st.Valid() {
		t.Error("valid value reports invalid")
	}

	st.Set("")
	// Valid depends only on the value, not on touched.
	if st.Valid() {
		t.Error("empty required value reports valid")
	}
	if _, ok := st.Error(); ok {
		t.Error("untouched state surfaced an error")
	}
	st.Touch()
	if msg, ok := st.Error(); !ok || msg == "" {
		t.Error("touched invalid state surfaced no error")
	}

	st.Reset()
	if st.Value() != "hello" || st.Touched() {
		t.Errorf("reset state: value=%v touched=%v", st.Value(), st.Touched())
	}
}

func TestValueStateDefaultFromConfig(t *testing.T) {
	f := NewText("t", "T", Config{"default": "fallback"})
	if v := f.NewState(nil).Value(); v != "fallback" {
		t.Errorf("default value = %v", v)
	}
	if v := f.NewState("explicit").Value(); v != "explicit" {
		t.Errorf("explicit initial = %v", v)
	}
}

func TestCellWatch(t *testing.T) {
	c := NewCell[int](1)
	var seen []int
	c.Watch(func(v int) { seen = append(seen, v) })
	c.Set(2)
	c.Set(3)
	if c.Get() != 3 || len(seen) != 2 || seen[0] != 2 || seen[1] != 3 {
		t.Errorf("cell state: get=%d seen=%v", c.Get(), seen)
	}
}
