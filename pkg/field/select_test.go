package field

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	goskema "github.com/reoring/goskema"
)

func colorOptions() []Option {
	return []Option{
		{Value: "red", Label: "Red"},
		{Value: "green", Label: "Green"},
		{Value: "blue", Label: "Blue", Disabled: true},
	}
}

func TestSelectMembershipEnabledOnly(t *testing.T) {
	f := NewSelect("color", "Color", Config{"options": colorOptions()})

	if got := Import(f, "red"); got != "red" {
		t.Fatalf("Import(red) = %v", got)
	}

	// "blue" matches a listed option, but a disabled one: invalid.
	res := f.ImportDetailed("blue")
	if res.OK {
		t.Fatal("disabled option value accepted")
	}
	if res.Issue == nil || res.Issue.Code != goskema.CodeInvalidEnum {
		t.Errorf("issue = %+v", res.Issue)
	}
}

func TestSelectImportMatchesLabel(t *testing.T) {
	f := NewSelect("color", "Color", Config{"options": colorOptions()})

	// Value match wins; label match is the second pass and case-sensitive.
	if got := Import(f, "Green"); got != "green" {
		t.Errorf("Import(Green) = %v, want green", got)
	}
	if got := Import(f, "GREEN"); got != nil {
		t.Errorf("Import(GREEN) = %v, want nil", got)
	}
	if got := Import(f, "purple"); got != nil {
		t.Errorf("Import(purple) = %v, want nil", got)
	}
}

func TestSelectPresentUsesLabel(t *testing.T) {
	f := NewSelect("color", "Color", Config{"options": colorOptions()})
	if got := f.Present("green"); got != "Green" {
		t.Errorf("Present(green) = %q", got)
	}
	// Disabled options still render their label.
	if got := f.Present("blue"); got != "Blue" {
		t.Errorf("Present(blue) = %q", got)
	}
	if got := f.Present("unknown"); got != "unknown" {
		t.Errorf("Present(unknown) = %q", got)
	}
}

func TestMultiSelectImportArray(t *testing.T) {
	f := NewMultiSelect("colors", "Colors", Config{"options": colorOptions()})

	got := Import(f, []string{"red", "Green"})
	if diff := cmp.Diff([]string{"red", "green"}, got); diff != "" {
		t.Fatalf("Import mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiSelectImportDelimitedString(t *testing.T) {
	f := NewMultiSelect("colors", "Colors", Config{"options": colorOptions()})

	got := Import(f, " red , Green ")
	if diff := cmp.Diff([]string{"red", "green"}, got); diff != "" {
		t.Fatalf("Import mismatch (-want +got):\n%s", diff)
	}

	pipes := NewMultiSelect("colors", "Colors", Config{
		"options":   colorOptions(),
		"delimiter": "|",
	})
	got = Import(pipes, "red|Green")
	if diff := cmp.Diff([]string{"red", "green"}, got); diff != "" {
		t.Fatalf("piped import mismatch (-want +got):\n%s", diff)
	}
}

// Unmatched entries drop silently; dropping everything yields nil, never an
// empty list.
func TestMultiSelectSilentDrops(t *testing.T) {
	f := NewMultiSelect("colors", "Colors", Config{"options": colorOptions()})

	got := Import(f, []string{"red", "purple", "magenta"})
	if diff := cmp.Diff([]string{"red"}, got); diff != "" {
		t.Fatalf("partial drop mismatch (-want +got):\n%s", diff)
	}

	if got := Import(f, []string{"purple", "magenta"}); got != nil {
		t.Fatalf("all-dropped import = %v, want nil", got)
	}
}

// Matching a disabled option keeps the entry through coercion, but the
// schema then rejects the whole list.
func TestMultiSelectDisabledValueFailsValidation(t *testing.T) {
	f := NewMultiSelect("colors", "Colors", Config{"options": colorOptions()})
	res := f.ImportDetailed([]string{"red", "blue"})
	if res.OK {
		t.Fatal("list containing a disabled value accepted")
	}
	if res.Issue == nil || res.Issue.Code != goskema.CodeInvalidEnum {
		t.Errorf("issue = %+v", res.Issue)
	}
}

func TestMultiSelectSelectionBounds(t *testing.T) {
	f := NewMultiSelect("colors", "Colors", Config{
		"options":       colorOptions(),
		"maxSelections": 1,
	})
	if got := Import(f, []string{"red", "green"}); got != nil {
		t.Fatalf("over-limit selection imported: %v", got)
	}
	if got := Import(f, []string{"red"}); got == nil {
		t.Fatal("in-limit selection rejected")
	}
}

func TestMultiSelectPresent(t *testing.T) {
	f := NewMultiSelect("colors", "Colors", Config{"options": colorOptions()})
	if got := f.Present([]string{"red", "green"}); got != "Red, Green" {
		t.Errorf("Present = %q", got)
	}
	if got := f.Present([]string{}); got != Placeholder {
		t.Errorf("Present(empty) = %q", got)
	}
}
