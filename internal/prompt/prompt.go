// Package prompt renders the LLM prompts from an embedded YAML template
// file, so wording can change without touching handler code.
package prompt

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var rawTemplates []byte

type templateFile struct {
	System      string `yaml:"system"`
	SimpleField string `yaml:"simple_field"`
	DetailedRow string `yaml:"detailed_row"`
	Form        string `yaml:"form"`
}

// Library holds the parsed prompt templates.
type Library struct {
	system      string
	simpleField *template.Template
	detailedRow *template.Template
	form        *template.Template
}

// Load parses the embedded prompts.yaml. All four templates are required.
func Load() (*Library, error) {
	var tf templateFile
	if err := yaml.Unmarshal(rawTemplates, &tf); err != nil {
		return nil, fmt.Errorf("parse prompts.yaml: %w", err)
	}
	for name, body := range map[string]string{
		"system":       tf.System,
		"simple_field": tf.SimpleField,
		"detailed_row": tf.DetailedRow,
		"form":         tf.Form,
	} {
		if strings.TrimSpace(body) == "" {
			return nil, fmt.Errorf("prompts.yaml: %s template is required", name)
		}
	}

	lib := &Library{system: strings.TrimSpace(tf.System)}
	var err error
	if lib.simpleField, err = template.New("simple_field").Parse(tf.SimpleField); err != nil {
		return nil, fmt.Errorf("parse simple_field template: %w", err)
	}
	if lib.detailedRow, err = template.New("detailed_row").Parse(tf.DetailedRow); err != nil {
		return nil, fmt.Errorf("parse detailed_row template: %w", err)
	}
	if lib.form, err = template.New("form").Parse(tf.Form); err != nil {
		return nil, fmt.Errorf("parse form template: %w", err)
	}
	return lib, nil
}

// System returns the shared system prompt.
func (l *Library) System() string {
	return l.system
}

// SimpleFieldData fills the simple_field template.
type SimpleFieldData struct {
	Question string
	Value    string
	Examples string
}

// DetailedRowData fills the detailed_row template.
type DetailedRowData struct {
	Question string
	Value    string
	RowData  string
	Examples string
}

// FormData fills the whole-form template.
type FormData struct {
	FormName string
	Body     string
}

func (l *Library) SimpleField(data SimpleFieldData) (string, error) {
	return render(l.simpleField, data)
}

func (l *Library) DetailedRow(data DetailedRowData) (string, error) {
	return render(l.detailedRow, data)
}

func (l *Library) Form(data FormData) (string, error) {
	return render(l.form, data)
}

func render(t *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return sb.String(), nil
}

// FormatExamples renders examples as a numbered list.
func FormatExamples(examples []string) string {
	var sb strings.Builder
	for i, ex := range examples {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, ex)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// FormatRowData renders sibling row values as "- key: value" lines,
// filtering null and blank entries. Keys are sorted for stable prompts.
func FormatRowData(row map[string]any) string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		v := row[k]
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			if strings.TrimSpace(s) == "" {
				continue
			}
			fmt.Fprintf(&sb, "- %s: %s\n", k, s)
			continue
		}
		fmt.Fprintf(&sb, "- %s: %v\n", k, v)
	}
	return strings.TrimRight(sb.String(), "\n")
}
