package pdf

import (
	"fmt"
	"html/template"
	"strings"

	"formloom/internal/form"
)

// view models flatten the spec + answer map into something the HTML
// template can walk without lookups.

type documentView struct {
	Name        string
	Description string
	Style       Style
	Sections    []sectionView
}

type sectionView struct {
	Title       string
	Description string
	Questions   []questionView
}

type questionView struct {
	Text          string
	Kind          string
	Answer        string
	List          []string
	Justification string
	Image         template.URL
	Columns       []string
	Rows          [][]string
}

func buildView(spec form.Spec, values map[string]any, style Style) documentView {
	doc := documentView{
		Name:        spec.Name,
		Description: spec.Description,
		Style:       style,
	}
	for si, section := range spec.Sections {
		sv := sectionView{Title: section.Title, Description: section.Description}
		for qi, q := range section.Questions {
			sv.Questions = append(sv.Questions, buildQuestionView(q, values, form.Path(si, qi)))
		}
		doc.Sections = append(doc.Sections, sv)
	}
	return doc
}

func buildQuestionView(q form.Question, values map[string]any, path string) questionView {
	qv := questionView{Text: q.Question, Kind: q.Type}
	answer := values[path]

	switch q.Type {
	case form.TypeImage:
		// html/template rejects data: URLs in src attributes, so vet the
		// value here and mark it trusted.
		if s, ok := answer.(string); ok && safeImageURL(s) {
			qv.Image = template.URL(s)
		}
	case form.TypeDetailed:
		for _, attr := range q.Attributes {
			qv.Columns = append(qv.Columns, attr.Name)
		}
		rows, _ := answer.([]any)
		for _, rv := range rows {
			row, ok := rv.(map[string]any)
			if !ok {
				continue
			}
			cells := make([]string, len(q.Attributes))
			for i, attr := range q.Attributes {
				cells[i] = cellText(row[attr.Name])
			}
			qv.Rows = append(qv.Rows, cells)
		}
	default:
		switch a := answer.(type) {
		case []any:
			for _, item := range a {
				qv.List = append(qv.List, cellText(item))
			}
		default:
			qv.Answer = cellText(answer)
		}
		if q.Type == form.TypeOption && q.Justification {
			qv.Justification = cellText(values[path+".justification"])
		}
	}
	return qv
}

func safeImageURL(s string) bool {
	return strings.HasPrefix(s, "data:image/") ||
		strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://")
}

func cellText(v any) string {
	switch a := v.(type) {
	case nil:
		return ""
	case string:
		return a
	case float64:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", a), "0"), ".")
	case bool:
		if a {
			return "yes"
		}
		return "no"
	default:
		return fmt.Sprintf("%v", v)
	}
}

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: {{.Style.Font.Family}}; font-size: {{.Style.Font.Size}}; color: {{.Style.Font.TextColor}}; }
h1, h2 { color: {{.Style.Font.HeadingColor}}; }
h1 { font-size: 1.6em; margin-bottom: 0.2em; }
h2 { font-size: 1.2em; margin-top: 1.2em; border-bottom: 1px solid {{.Style.Table.BorderColor}}; }
.description { color: #555; margin-top: 0; }
.question { margin: 0.8em 0 0.2em; font-weight: bold; }
.answer { margin: 0; white-space: pre-wrap; }
.answer.empty { color: #999; font-style: italic; }
.justification { margin: 0.2em 0 0; color: #444; }
table { border-collapse: collapse; width: 100%; margin-top: 0.4em; }
th, td { border: 1px solid {{.Style.Table.BorderColor}}; padding: 4px 6px; text-align: left; vertical-align: top; }
th { background: {{.Style.Table.HeaderBackground}}; }
img.answer-image { max-width: 100%; max-height: 4in; margin-top: 0.4em; }
</style>
</head>
<body>
<h1>{{.Name}}</h1>
{{- if .Description}}
<p class="description">{{.Description}}</p>
{{- end}}
{{- range .Sections}}
<h2>{{.Title}}</h2>
{{- if .Description}}
<p class="description">{{.Description}}</p>
{{- end}}
{{- range .Questions}}
<p class="question">{{.Text}}</p>
{{- if eq .Kind "image"}}
{{- if .Image}}
<img class="answer-image" src="{{.Image}}">
{{- else}}
<p class="answer empty">No image provided</p>
{{- end}}
{{- else if eq .Kind "detailed"}}
{{- if .Rows}}
<table>
<tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
{{- range .Rows}}
<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</table>
{{- else}}
<p class="answer empty">No rows provided</p>
{{- end}}
{{- else if .List}}
<ul>
{{- range .List}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- else if .Answer}}
<p class="answer">{{.Answer}}</p>
{{- else}}
<p class="answer empty">No answer provided</p>
{{- end}}
{{- if .Justification}}
<p class="justification">Justification: {{.Justification}}</p>
{{- end}}
{{- end}}
{{- end}}
</body>
</html>`))

// renderHTML produces the printable HTML document for a filled form.
func renderHTML(spec form.Spec, values map[string]any, style Style) (string, error) {
	var sb strings.Builder
	if err := documentTemplate.Execute(&sb, buildView(spec, values, style)); err != nil {
		return "", fmt.Errorf("render document: %w", err)
	}
	return sb.String(), nil
}
