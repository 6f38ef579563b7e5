package main

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-formfield/pkg/field"
)

// fillInteractive prompts for every field in order and returns the imported
// values. Ctrl-C aborts the whole fill.
func fillInteractive(fields []field.Field) (map[string]any, error) {
	values := make(map[string]any, len(fields))
	for _, f := range fields {
		v, err := promptField(f)
		if err != nil {
			return nil, err
		}
		if v != nil {
			values[f.Name()] = v
		}
	}
	return values, nil
}

func promptField(f field.Field) (any, error) {
	switch ft := f.(type) {
	case *field.Boolean:
		return promptBool(ft)
	case *field.Select:
		return promptSelect(ft)
	case *field.MultiSelect:
		return promptMultiSelect(ft)
	case *field.Group:
		return promptGroup(ft)
	case *field.Array:
		return promptArray(ft)
	case *field.Masked:
		return promptText(f, true)
	default:
		if f.Kind() == field.KindTextArea || f.Kind() == field.KindRichText {
			return promptTextArea(f)
		}
		return promptText(f, false)
	}
}

// importValidator revalidates each keystroke-committed answer through the
// field's own import path, so the prompt reports the same message the form
// would.
func importValidator(f field.Field) survey.Validator {
	return func(ans any) error {
		s, ok := ans.(string)
		if !ok {
			return nil
		}
		if s == "" && !f.Config().Bool("required") {
			return nil
		}
		res := f.ImportDetailed(s)
		if !res.OK {
			return errors.New(res.Message())
		}
		return nil
	}
}

func promptText(f field.Field, masked bool) (any, error) {
	var out string
	var prompt survey.Prompt
	if masked {
		prompt = &survey.Password{Message: f.Label()}
	} else {
		def, _ := f.Config().String("default")
		prompt = &survey.Input{Message: f.Label(), Default: def}
	}
	err := survey.AskOne(prompt, &out, survey.WithValidator(importValidator(f)))
	if err != nil {
		return nil, translateSurveyErr(err)
	}
	if out == "" {
		return nil, nil
	}
	return field.Import(f, out), nil
}

func promptTextArea(f field.Field) (any, error) {
	var out string
	prompt := &survey.Multiline{Message: f.Label()}
	if err := survey.AskOne(prompt, &out, survey.WithValidator(importValidator(f))); err != nil {
		return nil, translateSurveyErr(err)
	}
	if out == "" {
		return nil, nil
	}
	return field.Import(f, out), nil
}

func promptBool(f *field.Boolean) (any, error) {
	var out bool
	prompt := &survey.Confirm{Message: f.Label(), Default: f.Config().Bool("default")}
	if err := survey.AskOne(prompt, &out); err != nil {
		return nil, translateSurveyErr(err)
	}
	return out, nil
}

func promptSelect(f *field.Select) (any, error) {
	labels, byLabel := optionPromptSet(f.Config().Options())
	if len(labels) == 0 {
		return nil, nil
	}
	var out string
	prompt := &survey.Select{Message: f.Label(), Options: labels}
	if err := survey.AskOne(prompt, &out); err != nil {
		return nil, translateSurveyErr(err)
	}
	return byLabel[out], nil
}

func promptMultiSelect(f *field.MultiSelect) (any, error) {
	labels, byLabel := optionPromptSet(f.Config().Options())
	if len(labels) == 0 {
		return nil, nil
	}
	var out []string
	prompt := &survey.MultiSelect{Message: f.Label(), Options: labels}
	if err := survey.AskOne(prompt, &out); err != nil {
		return nil, translateSurveyErr(err)
	}
	if len(out) == 0 {
		return nil, nil
	}
	values := make([]string, 0, len(out))
	for _, label := range out {
		values = append(values, byLabel[label])
	}
	return values, nil
}

// optionPromptSet keeps only enabled options and maps display labels back
// to stored values.
func optionPromptSet(opts []field.Option) ([]string, map[string]string) {
	labels := make([]string, 0, len(opts))
	byLabel := make(map[string]string, len(opts))
	for _, o := range opts {
		if o.Disabled {
			continue
		}
		labels = append(labels, o.Label)
		byLabel[o.Label] = o.Value
	}
	return labels, byLabel
}

func promptGroup(g *field.Group) (any, error) {
	fmt.Printf("%s:\n", g.Label())
	values := make(map[string]any)
	for _, child := range g.Children() {
		v, err := promptField(child)
		if err != nil {
			return nil, err
		}
		if v != nil {
			values[child.Name()] = v
		}
	}
	if len(values) == 0 {
		return nil, nil
	}
	return values, nil
}

func promptArray(a *field.Array) (any, error) {
	var rows []map[string]any
	for {
		another := "Add an item to " + a.Label() + "?"
		if len(rows) > 0 {
			another = "Add another item?"
		}
		var more bool
		if err := survey.AskOne(&survey.Confirm{Message: another, Default: len(rows) == 0}, &more); err != nil {
			return nil, translateSurveyErr(err)
		}
		if !more {
			break
		}
		row := make(map[string]any)
		for _, f := range a.ItemFields() {
			v, err := promptField(f)
			if err != nil {
				return nil, err
			}
			if v != nil {
				row[f.Name()] = v
			}
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errors.New("aborted")
	}
	return err
}
