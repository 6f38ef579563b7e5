package fieldschema

import (
	"context"
	"regexp"
	"testing"
	"time"

	goskema "github.com/reoring/goskema"
)

var ctx = context.Background()

func firstCode(t *testing.T, err error) string {
	t.Helper()
	if err == nil {
		t.Fatal("expected a validation error")
	}
	issue, ok := First(err)
	if !ok {
		t.Fatalf("error carries no issues: %v", err)
	}
	return issue.Code
}

func TestStringTypeCheck(t *testing.T) {
	s := String()
	if _, err := s.Parse(ctx, "ok"); err != nil {
		t.Fatalf("valid string rejected: %v", err)
	}
	if code := firstCode(t, mustErr(s.Parse(ctx, nil))); code != goskema.CodeRequired {
		t.Errorf("nil code = %s", code)
	}
	if code := firstCode(t, mustErr(s.Parse(ctx, 42))); code != goskema.CodeInvalidType {
		t.Errorf("int code = %s", code)
	}
}

func mustErr(_ any, err error) error { return err }

func TestStringRules(t *testing.T) {
	s := String().NonEmpty().MinLen(3).MaxLen(5)
	if _, err := s.Parse(ctx, "abcd"); err != nil {
		t.Fatalf("in-range string rejected: %v", err)
	}
	if code := firstCode(t, mustErr(s.Parse(ctx, "  "))); code != goskema.CodeRequired {
		t.Errorf("blank code = %s", code)
	}
	if code := firstCode(t, mustErr(s.Parse(ctx, "ab"))); code != goskema.CodeTooShort {
		t.Errorf("short code = %s", code)
	}
	if code := firstCode(t, mustErr(s.Parse(ctx, "abcdef"))); code != goskema.CodeTooLong {
		t.Errorf("long code = %s", code)
	}

	// Rune counts, not bytes.
	if _, err := String().MaxLen(3).Parse(ctx, "üçü"); err != nil {
		t.Errorf("three-rune string rejected: %v", err)
	}
}

func TestPattern(t *testing.T) {
	s := String().Pattern(regexp.MustCompile(`^\d+$`))
	if _, err := s.Parse(ctx, "123"); err != nil {
		t.Fatalf("matching string rejected: %v", err)
	}
	if code := firstCode(t, mustErr(s.Parse(ctx, "12a"))); code != goskema.CodePattern {
		t.Errorf("pattern code = %s", code)
	}
	// nil pattern degrades to always-passing.
	if _, err := String().Pattern(nil).Parse(ctx, "anything"); err != nil {
		t.Errorf("nil pattern rejected input: %v", err)
	}
}

func TestCheck(t *testing.T) {
	s := String().Check("must shout", func(v string) bool { return v == "HEY" })
	issue, _ := First(mustErr(s.Parse(ctx, "hey")))
	if issue.Code != goskema.CodeInvalidFormat || issue.Message != "must shout" {
		t.Errorf("issue = %+v", issue)
	}
}

func TestOneOf(t *testing.T) {
	s := String().OneOf([]string{"a", "b"})
	if _, err := s.Parse(ctx, "a"); err != nil {
		t.Fatalf("member rejected: %v", err)
	}
	if code := firstCode(t, mustErr(s.Parse(ctx, "A"))); code != goskema.CodeInvalidEnum {
		t.Errorf("case-mismatch code = %s", code)
	}
	if _, err := String().OneOfFold([]string{"a"}).Parse(ctx, "A"); err != nil {
		t.Errorf("folded member rejected: %v", err)
	}
}

func TestNumber(t *testing.T) {
	s := Number().Min(1).Max(10).Integer()
	if _, err := s.Parse(ctx, 5); err != nil {
		t.Fatalf("valid int rejected: %v", err)
	}
	if _, err := s.Parse(ctx, 5.0); err != nil {
		t.Fatalf("whole float rejected: %v", err)
	}
	if code := firstCode(t, mustErr(s.Parse(ctx, 0))); code != goskema.CodeTooSmall {
		t.Errorf("small code = %s", code)
	}
	if code := firstCode(t, mustErr(s.Parse(ctx, 11))); code != goskema.CodeTooBig {
		t.Errorf("big code = %s", code)
	}
	if err := mustErr(s.Parse(ctx, 5.5)); err == nil {
		t.Error("fractional value passed an integer schema")
	}
	if code := firstCode(t, mustErr(s.Parse(ctx, "5"))); code != goskema.CodeInvalidType {
		t.Errorf("string code = %s", code)
	}
}

// Out-of-range configuration produces an always-failing schema, never a
// construction fault.
func TestInvertedBoundsAlwaysFail(t *testing.T) {
	s := Number().Min(10).Max(1)
	for _, v := range []any{0, 5, 11} {
		if _, err := s.Parse(ctx, v); err == nil {
			t.Errorf("value %v passed min>max schema", v)
		}
	}
}

func TestBool(t *testing.T) {
	s := Bool()
	if _, err := s.Parse(ctx, true); err != nil {
		t.Fatalf("true rejected: %v", err)
	}
	if _, err := s.Parse(ctx, false); err != nil {
		t.Fatalf("false rejected: %v", err)
	}
	if err := mustErr(s.Parse(ctx, nil)); err == nil {
		t.Error("nil passed a bool schema")
	}

	strict := Bool().TrueOnly()
	if code := firstCode(t, mustErr(strict.Parse(ctx, false))); code != goskema.CodeRequired {
		t.Errorf("false-under-required code = %s", code)
	}
	if _, err := strict.Parse(ctx, true); err != nil {
		t.Errorf("true rejected under TrueOnly: %v", err)
	}
}

func TestRequiredWidensOptional(t *testing.T) {
	s := Required(String().NonEmpty(), false)
	if _, err := s.Parse(ctx, nil); err != nil {
		t.Fatalf("optional schema rejected nil: %v", err)
	}
	if err := mustErr(s.Parse(ctx, "")); err == nil {
		t.Error("optional widening leaked past non-nil input")
	}
	if _, err := Required(String(), true).Parse(ctx, nil); err == nil {
		t.Error("required schema accepted nil")
	}
}

// Booleans opt out of optional widening: an unchecked box reads false, so
// nil is never a legal boolean value.
func TestRequiredKeepsBoolNilStrict(t *testing.T) {
	s := Required(Bool(), false)
	if _, err := s.Parse(ctx, nil); err == nil {
		t.Error("optional bool accepted nil")
	}
	if _, err := s.Parse(ctx, false); err != nil {
		t.Errorf("optional bool rejected false: %v", err)
	}
}

func TestStringList(t *testing.T) {
	s := StringList().MinItems(1).MaxItems(3).EachIn([]string{"a", "b", "c"})
	if _, err := s.Parse(ctx, []string{"a", "c"}); err != nil {
		t.Fatalf("valid list rejected: %v", err)
	}
	if err := mustErr(s.Parse(ctx, []string{})); err == nil {
		t.Error("empty list passed MinItems(1)")
	}
	if err := mustErr(s.Parse(ctx, []string{"a", "b", "c", "a"})); err == nil {
		t.Error("oversized list passed MaxItems(3)")
	}
	if code := firstCode(t, mustErr(s.Parse(ctx, []string{"z"}))); code != goskema.CodeInvalidEnum {
		t.Errorf("non-member code = %s", code)
	}
	if err := mustErr(s.Parse(ctx, "a,b")); err == nil {
		t.Error("plain string passed a list schema")
	}
}

func TestDate(t *testing.T) {
	min := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	max := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	s := Date().NotBefore(min).NotAfter(max)

	mid := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	if _, err := s.Parse(ctx, mid); err != nil {
		t.Fatalf("in-range date rejected: %v", err)
	}
	early := min.AddDate(0, 0, -1)
	if code := firstCode(t, mustErr(s.Parse(ctx, early))); code != goskema.CodeTooSmall {
		t.Errorf("early code = %s", code)
	}
	late := max.AddDate(0, 0, 1)
	if code := firstCode(t, mustErr(s.Parse(ctx, late))); code != goskema.CodeTooBig {
		t.Errorf("late code = %s", code)
	}
	if err := mustErr(s.Parse(ctx, time.Time{})); err == nil {
		t.Error("zero time passed a date schema")
	}
}

func TestRuleCheckCollectsAllIssues(t *testing.T) {
	s := String().MinLen(5).Pattern(regexp.MustCompile(`^\d+$`))
	err := mustErr(s.Parse(ctx, "ab"))
	iss, ok := goskema.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("expected both rule failures, got %v", err)
	}
}

func TestObjectOf(t *testing.T) {
	obj := Object([]Child{
		{Name: "title", Schema: Required(String().NonEmpty(), true), Required: true},
		{Name: "note", Schema: Required(String(), false)},
	})

	if _, err := obj.Parse(ctx, map[string]any{"title": "hi"}); err != nil {
		t.Fatalf("valid object rejected: %v", err)
	}
	if _, err := obj.Parse(ctx, map[string]any{}); err == nil {
		t.Error("object missing a required key accepted")
	}
	if _, err := obj.Parse(ctx, map[string]any{"title": ""}); err == nil {
		t.Error("invalid child value accepted")
	}
}

func TestRows(t *testing.T) {
	row := ObjectOf([]Child{
		{Name: "name", Schema: Required(String().NonEmpty(), true), Required: true},
	})
	s := Rows(row, 1, 2)

	one := []map[string]any{{"name": "a"}}
	if _, err := s.Parse(ctx, one); err != nil {
		t.Fatalf("single valid row rejected: %v", err)
	}
	if _, err := s.Parse(ctx, []map[string]any{}); err == nil {
		t.Error("empty list passed a min-1 rows schema")
	}
	three := []map[string]any{{"name": "a"}, {"name": "b"}, {"name": "c"}}
	if _, err := s.Parse(ctx, three); err == nil {
		t.Error("three rows passed a max-2 rows schema")
	}
	if _, err := s.Parse(ctx, []map[string]any{{"name": ""}}); err == nil {
		t.Error("invalid row value accepted")
	}
}
