// Command formfield loads a form definition, fills it interactively or from
// a JSON document, and writes the exported values.
//
//	formfield -defs ./forms -form contact -fill
//	formfield -openapi api.yaml -schema Article -input article.json
//	formfield -types
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/formdef"
	"github.com/goliatone/go-formfield/pkg/openapi"
)

func main() {
	defs := flag.String("defs", "", "directory with form-definition documents")
	formName := flag.String("form", "", "form name to load from -defs")
	openapiSrc := flag.String("openapi", "", "OpenAPI document path or URL")
	schemaName := flag.String("schema", "", "component schema to import from -openapi")
	input := flag.String("input", "", "JSON file with raw values to import (stdin if \"-\")")
	fill := flag.Bool("fill", false, "prompt for values interactively")
	output := flag.String("output", "", "output file (stdout if empty)")
	types := flag.Bool("types", false, "list registered field kinds and exit")
	flag.Parse()

	if *types {
		for _, kind := range field.Default().Kinds() {
			fmt.Println(kind)
		}
		return
	}

	ctx := context.Background()

	form, err := resolveForm(ctx, *defs, *formName, *openapiSrc, *schemaName)
	if err != nil {
		log.Fatalf("load form: %v", err)
	}

	fields, err := formdef.Build(form)
	if err != nil {
		log.Fatalf("build fields: %v", err)
	}

	var values map[string]any
	switch {
	case *fill:
		values, err = fillInteractive(fields)
	case *input != "":
		values, err = importDocument(fields, *input)
	default:
		log.Fatal("nothing to do: pass -fill or -input")
	}
	if err != nil {
		log.Fatalf("collect values: %v", err)
	}

	exported := make(map[string]any, len(values))
	for _, f := range fields {
		if v, ok := values[f.Name()]; ok && v != nil {
			exported[f.Name()] = f.Export(v)
		}
	}

	data, err := json.MarshalIndent(exported, "", "  ")
	if err != nil {
		log.Fatalf("encode output: %v", err)
	}
	data = append(data, '\n')

	if *output != "" {
		if err := os.WriteFile(*output, data, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("values written to %s\n", *output)
		return
	}
	os.Stdout.Write(data)
}

func resolveForm(ctx context.Context, defs, formName, openapiSrc, schemaName string) (formdef.FormDef, error) {
	switch {
	case defs != "":
		if formName == "" {
			return formdef.FormDef{}, fmt.Errorf("-form is required with -defs")
		}
		store, err := formdef.LoadFS(os.DirFS(defs))
		if err != nil {
			return formdef.FormDef{}, err
		}
		form, ok := store.Form(formName)
		if !ok {
			return formdef.FormDef{}, fmt.Errorf("form %q not found (have %v)", formName, store.Names())
		}
		return form, nil
	case openapiSrc != "":
		if schemaName == "" {
			return formdef.FormDef{}, fmt.Errorf("-schema is required with -openapi")
		}
		src, err := openapi.SourceFor(openapiSrc)
		if err != nil {
			return formdef.FormDef{}, err
		}
		data, err := openapi.Fetch(ctx, src, openapi.LoaderOptions{AllowHTTPFallback: true})
		if err != nil {
			return formdef.FormDef{}, err
		}
		im := &openapi.Importer{}
		return im.Form(ctx, data, schemaName)
	default:
		return formdef.FormDef{}, fmt.Errorf("pass -defs or -openapi")
	}
}

// importDocument runs every raw value through its field's import path,
// reporting per-field failures with the first issue's detail.
func importDocument(fields []field.Field, path string) (map[string]any, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	values := make(map[string]any, len(fields))
	failed := 0
	for _, f := range fields {
		rv, present := raw[f.Name()]
		if !present {
			continue
		}
		res := f.ImportDetailed(rv)
		if !res.OK {
			failed++
			log.Warn("value rejected", "field", f.Name(), "reason", res.Message())
			continue
		}
		values[f.Name()] = res.Value
	}
	if failed > 0 {
		log.Warn("import finished with rejections", "rejected", failed)
	}
	return values, nil
}
