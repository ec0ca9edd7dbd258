package pdf

import (
	"strings"
	"testing"

	"formloom/internal/form"
)

func sampleSpec() form.Spec {
	return form.Spec{
		Name:        "Project Review",
		Description: "Quarterly review form",
		Sections: []form.Section{
			{Title: "Overview", Questions: []form.Question{
				{Type: form.TypeSimple, Question: "Summarize the quarter."},
				{Type: form.TypeOption, Question: "On track?", Options: []string{"yes", "no"}, Justification: true},
				{Type: form.TypeDetailed, Question: "Milestones", Attributes: []form.Attribute{
					{Name: "Title"}, {Name: "Status"},
				}},
				{Type: form.TypeImage, Question: "Burndown chart"},
			}},
		},
	}
}

func sampleValues() map[string]any {
	return map[string]any{
		"s0.q0":               "Shipped the storage migration.",
		"s0.q1":               "yes",
		"s0.q1.justification": "All milestones landed.",
		"s0.q2": []any{
			map[string]any{"Title": "Migration", "Status": "done"},
			map[string]any{"Title": "Cleanup", "Status": "open"},
		},
		"s0.q3": "data:image/png;base64,AAAA",
	}
}

func TestLoadStyle(t *testing.T) {
	style, err := loadStyle()
	if err != nil {
		t.Fatalf("load style: %v", err)
	}
	if style.Page.Format != "a4" {
		t.Fatalf("expected a4, got %q", style.Page.Format)
	}
	w, h := style.paperSize()
	if w != 8.27 || h != 11.69 {
		t.Fatalf("unexpected paper size %v x %v", w, h)
	}
	if style.Font.Family == "" || style.Table.BorderColor == "" {
		t.Fatalf("expected styling fields populated: %+v", style)
	}
}

func TestRenderHTML(t *testing.T) {
	style, err := loadStyle()
	if err != nil {
		t.Fatalf("load style: %v", err)
	}
	html, err := renderHTML(sampleSpec(), sampleValues(), style)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"Project Review",
		"Summarize the quarter.",
		"Shipped the storage migration.",
		"Justification: All milestones landed.",
		"<th>Title</th>",
		"<td>Migration</td>",
		"<td>open</td>",
		`src="data:image/png;base64,AAAA"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in HTML:\n%s", want, html)
		}
	}
}

func TestRenderHTMLEmptyAnswers(t *testing.T) {
	style, err := loadStyle()
	if err != nil {
		t.Fatalf("load style: %v", err)
	}
	html, err := renderHTML(sampleSpec(), map[string]any{}, style)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "No answer provided") {
		t.Fatalf("expected empty-answer placeholder:\n%s", html)
	}
	if !strings.Contains(html, "No rows provided") {
		t.Fatalf("expected empty-table placeholder:\n%s", html)
	}
	if !strings.Contains(html, "No image provided") {
		t.Fatalf("expected empty-image placeholder:\n%s", html)
	}
}

func TestRenderHTMLEscapesContent(t *testing.T) {
	style, err := loadStyle()
	if err != nil {
		t.Fatalf("load style: %v", err)
	}
	spec := form.Spec{
		Name: "X",
		Sections: []form.Section{{Title: "S", Questions: []form.Question{
			{Type: form.TypeSimple, Question: "Q"},
		}}},
	}
	html, err := renderHTML(spec, map[string]any{"s0.q0": "<script>alert(1)</script>"}, style)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Fatalf("expected answer escaped:\n%s", html)
	}
}

func TestCellText(t *testing.T) {
	if got := cellText(42.0); got != "42" {
		t.Fatalf("expected 42, got %q", got)
	}
	if got := cellText(1.5); got != "1.5" {
		t.Fatalf("expected 1.5, got %q", got)
	}
	if got := cellText(true); got != "yes" {
		t.Fatalf("expected yes, got %q", got)
	}
	if got := cellText(nil); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestBuildViewMultipleAnswers(t *testing.T) {
	spec := form.Spec{
		Name: "X",
		Sections: []form.Section{{Title: "S", Questions: []form.Question{
			{Type: form.TypeSimple, Question: "Q", Multiple: true},
		}}},
	}
	view := buildView(spec, map[string]any{"s0.q0": []any{"one", "two"}}, Style{})
	qv := view.Sections[0].Questions[0]
	if len(qv.List) != 2 || qv.List[0] != "one" {
		t.Fatalf("expected list answer, got %+v", qv)
	}
}
