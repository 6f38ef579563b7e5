package formdef

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/testsupport"
)

func loadStore(t *testing.T, files map[string]string) *Store {
	t.Helper()
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	store, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	return store
}

func contactYAML(t *testing.T) string {
	t.Helper()
	return string(testsupport.LoadFixture(t, "contact.yaml"))
}

func TestLoadAndBuild(t *testing.T) {
	store := loadStore(t, map[string]string{"contact.yaml": contactYAML(t)})
	form, ok := store.Form("contact")
	if !ok {
		t.Fatalf("form not found; have %v", store.Names())
	}
	if form.Title != "Contact" {
		t.Errorf("title = %q", form.Title)
	}

	fields, err := Build(form)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	kinds := make([]string, 0, len(fields))
	for _, f := range fields {
		kinds = append(kinds, f.Kind())
	}
	testsupport.Diff(t, []string{
		field.KindText, field.KindEmail, field.KindMultiSelect,
		field.KindGroup, field.KindArray,
	}, kinds)

	// Config flows through to behavior.
	if got := field.Import(fields[0], nil); got != nil {
		t.Error("required text accepted nil")
	}
	group, ok := fields[3].(*field.Group)
	if !ok || len(group.Children()) != 2 {
		t.Fatalf("group = %v", fields[3])
	}
	array, ok := fields[4].(*field.Array)
	if !ok || len(array.ItemFields()) != 1 {
		t.Fatalf("array = %v", fields[4])
	}
}

func TestLoadJSONDocument(t *testing.T) {
	store := loadStore(t, map[string]string{
		"simple.json": `{"forms":{"simple":{"fields":[{"name":"title","label":"Title","kind":"text"}]}}}`,
	})
	if _, ok := store.Form("simple"); !ok {
		t.Fatal("JSON document not loaded")
	}
}

func TestDuplicateFormNameFails(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": &fstest.MapFile{Data: []byte("forms:\n  contact:\n    fields: []\n")},
		"b.yaml": &fstest.MapFile{Data: []byte("forms:\n  contact:\n    fields: []\n")},
	}
	if _, err := LoadFS(fsys); err == nil || !strings.Contains(err.Error(), "duplicate form") {
		t.Fatalf("err = %v", err)
	}
}

func TestDuplicateFieldNameFails(t *testing.T) {
	doc := `
forms:
  broken:
    fields:
      - name: title
        kind: text
      - name: title
        kind: text
`
	fsys := fstest.MapFS{"broken.yaml": &fstest.MapFile{Data: []byte(doc)}}
	if _, err := LoadFS(fsys); err == nil || !strings.Contains(err.Error(), "twice") {
		t.Fatalf("err = %v", err)
	}
}

// Unknown kinds fall back to the text type: registry misses place fallback
// on the caller, and text is the conventional choice.
func TestUnknownKindFallsBackToText(t *testing.T) {
	form := FormDef{Name: "f", Fields: []FieldDef{{Name: "x", Label: "X", Kind: "hologram"}}}
	fields, err := Build(form)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if fields[0].Kind() != field.KindText {
		t.Errorf("fallback kind = %s", fields[0].Kind())
	}
}

func TestEmptyDocumentFails(t *testing.T) {
	fsys := fstest.MapFS{"empty.yaml": &fstest.MapFile{Data: []byte("  \n")}}
	if _, err := LoadFS(fsys); err == nil {
		t.Fatal("empty document accepted")
	}
}

func TestNonDefinitionFilesIgnored(t *testing.T) {
	store := loadStore(t, map[string]string{
		"README.md":    "# not a form",
		"contact.yaml": contactYAML(t),
	})
	if len(store.Names()) != 1 {
		t.Errorf("forms = %v", store.Names())
	}
}
