// Package openapi derives form definitions from OpenAPI 3 component
// schemas. Each object schema maps to an ordered field list: formats pick
// field kinds (email, uri, date, date-time), enums become selects, arrays
// become tags, multiselects or row arrays depending on their item schema,
// and nested objects become groups.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/formdef"
)

// Importer converts OpenAPI documents into form definitions.
type Importer struct {
	// AllowExternalRefs lets the loader chase refs outside the document.
	AllowExternalRefs bool
}

// Forms extracts a form definition for every object schema under
// components/schemas, keyed by schema name.
func (im *Importer) Forms(ctx context.Context, data []byte) (map[string]formdef.FormDef, error) {
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: im.AllowExternalRefs,
	}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, errors.New("openapi: document has no component schemas")
	}
	forms := make(map[string]formdef.FormDef)
	for name, ref := range doc.Components.Schemas {
		src := ref.Value
		if src == nil || !hasType(src, "object") {
			continue
		}
		forms[name] = formdef.FormDef{
			Name:   name,
			Title:  titleOf(src, name),
			Fields: im.fieldsOf(src),
		}
	}
	if len(forms) == 0 {
		return nil, errors.New("openapi: no object schemas to import")
	}
	return forms, nil
}

// Form extracts a single named component schema.
func (im *Importer) Form(ctx context.Context, data []byte, name string) (formdef.FormDef, error) {
	forms, err := im.Forms(ctx, data)
	if err != nil {
		return formdef.FormDef{}, err
	}
	form, ok := forms[name]
	if !ok {
		return formdef.FormDef{}, fmt.Errorf("openapi: schema %q not found", name)
	}
	return form, nil
}

func titleOf(src *openapi3.Schema, fallback string) string {
	if src.Title != "" {
		return src.Title
	}
	return fallback
}

// fieldsOf maps an object schema's properties in name order, which keeps
// output deterministic across runs since OpenAPI property maps are
// unordered.
func (im *Importer) fieldsOf(src *openapi3.Schema) []formdef.FieldDef {
	names := make([]string, 0, len(src.Properties))
	for name := range src.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	required := make(map[string]bool, len(src.Required))
	for _, name := range src.Required {
		required[name] = true
	}

	out := make([]formdef.FieldDef, 0, len(names))
	for _, name := range names {
		ref := src.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		def := im.fieldOf(name, ref.Value)
		if required[name] {
			if def.Config == nil {
				def.Config = map[string]any{}
			}
			def.Config["required"] = true
		}
		out = append(out, def)
	}
	return out
}

func (im *Importer) fieldOf(name string, src *openapi3.Schema) formdef.FieldDef {
	def := formdef.FieldDef{
		Name:  name,
		Label: labelFor(name, src),
	}
	switch {
	case hasType(src, "boolean"):
		def.Kind = field.KindBoolean
	case hasType(src, "integer"), hasType(src, "number"):
		def.Kind = field.KindNumber
		def.Config = numberConfig(src)
	case hasType(src, "array"):
		return im.arrayFieldOf(def, src)
	case hasType(src, "object"):
		def.Kind = field.KindGroup
		def.Fields = im.fieldsOf(src)
	default:
		def.Kind, def.Config = stringKind(src)
	}
	return def
}

func (im *Importer) arrayFieldOf(def formdef.FieldDef, src *openapi3.Schema) formdef.FieldDef {
	item := itemSchema(src)
	switch {
	case item != nil && hasType(item, "object"):
		def.Kind = field.KindArray
		def.Fields = im.fieldsOf(item)
		def.Config = itemBounds(src)
	case item != nil && len(item.Enum) > 0:
		def.Kind = field.KindMultiSelect
		def.Config = itemBounds(src)
		def.Config["options"] = enumStrings(item.Enum)
	default:
		def.Kind = field.KindTags
		def.Config = itemBounds(src)
	}
	if len(def.Config) == 0 {
		def.Config = nil
	}
	return def
}

func numberConfig(src *openapi3.Schema) map[string]any {
	cfg := map[string]any{}
	if src.Min != nil {
		cfg["min"] = *src.Min
	}
	if src.Max != nil {
		cfg["max"] = *src.Max
	}
	if hasType(src, "integer") {
		cfg["integer"] = true
	}
	if len(cfg) == 0 {
		return nil
	}
	return cfg
}

func itemSchema(src *openapi3.Schema) *openapi3.Schema {
	if src.Items == nil {
		return nil
	}
	return src.Items.Value
}

func itemBounds(src *openapi3.Schema) map[string]any {
	cfg := map[string]any{}
	if src.MinItems > 0 {
		cfg["minItems"] = int(src.MinItems)
	}
	if src.MaxItems != nil {
		cfg["maxItems"] = int(*src.MaxItems)
	}
	return cfg
}

// stringKind resolves the field kind for string schemas from format and
// enum, falling back to text.
func stringKind(src *openapi3.Schema) (string, map[string]any) {
	cfg := map[string]any{}
	if src.MinLength > 0 {
		cfg["minLength"] = int(src.MinLength)
	}
	if src.MaxLength != nil {
		cfg["maxLength"] = int(*src.MaxLength)
	}
	if src.Pattern != "" {
		cfg["pattern"] = src.Pattern
	}
	kind := field.KindText
	switch {
	case len(src.Enum) > 0:
		kind = field.KindSelect
		cfg = map[string]any{"options": enumStrings(src.Enum)}
	case src.Format == "email":
		kind = field.KindEmail
	case src.Format == "uri", src.Format == "url":
		kind = field.KindURL
	case src.Format == "date":
		kind = field.KindDate
	case src.Format == "date-time":
		kind = field.KindDateTime
	case src.Format == "time":
		kind = field.KindTime
	case src.Format == "phone":
		kind = field.KindPhone
	case src.Format == "color":
		kind = field.KindColor
	case src.Format == "password":
		kind = field.KindMasked
	}
	if len(cfg) == 0 {
		cfg = nil
	}
	return kind, cfg
}

func enumStrings(enum []any) []string {
	out := make([]string, 0, len(enum))
	for _, v := range enum {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func hasType(src *openapi3.Schema, name string) bool {
	if src.Type == nil {
		return false
	}
	for _, t := range src.Type.Slice() {
		if t == name {
			return true
		}
	}
	return false
}

// labelFor prefers the schema title, otherwise derives one from the
// property name ("firstName" and "first_name" both read "First Name").
func labelFor(name string, src *openapi3.Schema) string {
	if src.Title != "" {
		return src.Title
	}
	words := splitWords(name)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func splitWords(name string) []string {
	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.':
			flush()
		case r >= 'A' && r <= 'Z':
			flush()
			current.WriteRune(r + ('a' - 'A'))
		default:
			current.WriteRune(r)
		}
	}
	flush()
	if len(words) == 0 {
		return []string{name}
	}
	return words
}
