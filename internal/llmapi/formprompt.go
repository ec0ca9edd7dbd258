package llmapi

import (
	"encoding/json"
	"fmt"
	"strings"

	"formloom/internal/form"
)

// buildFormBody lays out every answered question for the whole-form
// prompt. Image questions are skipped; the flat layout mirrors the
// response schema so the model can echo section titles back.
func buildFormBody(spec form.Spec, values map[string]any) string {
	var sb strings.Builder
	for si, section := range spec.Sections {
		for qi, q := range section.Questions {
			if q.Type == form.TypeImage {
				continue
			}
			path := form.Path(si, qi)
			answer, ok := values[path]
			if !ok {
				continue
			}
			fmt.Fprintf(&sb, "Section: %s\n", section.Title)
			fmt.Fprintf(&sb, "Question: %s\n", q.Question)
			fmt.Fprintf(&sb, "Answer: %s\n", renderAnswer(answer))
			if q.Type == form.TypeOption && q.Justification {
				if j, ok := values[path+".justification"]; ok {
					fmt.Fprintf(&sb, "Justification: %s\n", renderAnswer(j))
				}
			}
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderAnswer(v any) string {
	switch a := v.(type) {
	case nil:
		return "(no answer)"
	case string:
		if strings.TrimSpace(a) == "" {
			return "(no answer)"
		}
		return a
	case []any:
		if strs, ok := allStrings(a); ok {
			return strings.Join(strs, ", ")
		}
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(raw)
}

func allStrings(items []any) ([]string, bool) {
	out := make([]string, 0, len(items))
	for _, it := range items {
		s, ok := it.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
