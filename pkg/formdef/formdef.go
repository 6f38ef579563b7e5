// Package formdef loads form definitions from YAML or JSON documents and
// builds field instances from them through the type registry. A document
// declares one or more named forms, each an ordered field list; group and
// array entries nest their children under "fields".
package formdef

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formfield/pkg/field"
)

// FieldDef is one field declaration. Config carries the kind-specific
// options verbatim; Fields holds the children of group and array kinds.
type FieldDef struct {
	Name   string         `json:"name" yaml:"name"`
	Label  string         `json:"label" yaml:"label"`
	Kind   string         `json:"kind" yaml:"kind"`
	Config map[string]any `json:"config,omitempty" yaml:"config,omitempty"`
	Fields []FieldDef     `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// FormDef is a named, ordered field list.
type FormDef struct {
	Name   string     `json:"name" yaml:"name"`
	Title  string     `json:"title" yaml:"title"`
	Fields []FieldDef `json:"fields" yaml:"fields"`
}

type documentFile struct {
	Forms map[string]FormDef `json:"forms" yaml:"forms"`
}

// Store holds the forms collected from a document tree.
type Store struct {
	forms map[string]FormDef
}

// Form returns the definition registered under name.
func (s *Store) Form(name string) (FormDef, bool) {
	if s == nil {
		return FormDef{}, false
	}
	f, ok := s.forms[name]
	return f, ok
}

// Names lists the loaded form names.
func (s *Store) Names() []string {
	out := make([]string, 0, len(s.forms))
	for name := range s.forms {
		out = append(out, name)
	}
	return out
}

// Empty reports whether the store holds any forms.
func (s *Store) Empty() bool {
	return s == nil || len(s.forms) == 0
}

// LoadFS walks the filesystem and parses every .yaml/.yml/.json file as a
// form-definition document. Duplicate form names across files are an error.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{forms: make(map[string]FormDef)}
	if fsys == nil {
		return store, nil
	}
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("formdef: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}
		for name, form := range doc.Forms {
			name = strings.TrimSpace(name)
			if name == "" {
				return fmt.Errorf("formdef: file %s defines a form with an empty name", path)
			}
			if _, exists := store.forms[name]; exists {
				return fmt.Errorf("formdef: duplicate form %q (file %s)", name, path)
			}
			if form.Name == "" {
				form.Name = name
			}
			if err := checkNames(form.Fields, name); err != nil {
				return err
			}
			store.forms[name] = form
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("formdef: file %s is empty", source)
	}
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return documentFile{}, fmt.Errorf("formdef: parse %s: invalid JSON or YAML", source)
}

func checkNames(defs []FieldDef, form string) error {
	seen := make(map[string]struct{}, len(defs))
	for _, def := range defs {
		name := strings.TrimSpace(def.Name)
		if name == "" {
			return fmt.Errorf("formdef: form %q declares a field with an empty name", form)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("formdef: form %q declares field %q twice", form, name)
		}
		seen[name] = struct{}{}
		if len(def.Fields) > 0 {
			if err := checkNames(def.Fields, form); err != nil {
				return err
			}
		}
	}
	return nil
}

// Build constructs field instances for the whole form in declaration order
// using the default registry.
func Build(form FormDef) ([]field.Field, error) {
	return BuildWith(field.Default(), form)
}

// BuildWith constructs field instances through reg. Unknown kinds fall back
// to the text type, which is the registry contract: lookup misses place
// fallback on the caller. Group and array kinds build their children first.
func BuildWith(reg *field.Registry, form FormDef) ([]field.Field, error) {
	out := make([]field.Field, 0, len(form.Fields))
	for _, def := range form.Fields {
		f, err := buildField(reg, def)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func buildField(reg *field.Registry, def FieldDef) (field.Field, error) {
	cfg := field.Config(def.Config)
	switch def.Kind {
	case field.KindGroup, field.KindArray:
		children := make([]field.Field, 0, len(def.Fields))
		for _, childDef := range def.Fields {
			child, err := buildField(reg, childDef)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		if def.Kind == field.KindGroup {
			return field.NewGroup(def.Name, def.Label, cfg, children)
		}
		return field.NewArray(def.Name, def.Label, cfg, children)
	default:
		ctor, ok := reg.Lookup(def.Kind)
		if !ok {
			ctor, _ = reg.Lookup(field.KindText)
			if ctor == nil {
				return nil, fmt.Errorf("formdef: no constructor for kind %q and no text fallback", def.Kind)
			}
		}
		return ctor(def.Name, def.Label, cfg), nil
	}
}
