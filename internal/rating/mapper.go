package rating

import (
	"encoding/json"
	"strings"

	"formloom/internal/form"
)

// The model is asked for a flat array of {sectionTitle, comment, rate}
// but in practice drifts: section titles get renamed or dropped, and
// some models answer with the nested {sections:[{questions:[...]}]}
// shape instead. The mapper accepts both and never fails — malformed
// input yields an empty or partial map.

type flatItem struct {
	sectionTitle string
	comment      string
	rate         string
}

// MapByPath maps an LLM rating result onto a spec, keyed by the
// canonical "s{si}.q{qi}" answer path.
func MapByPath(spec form.Spec, raw json.RawMessage) map[string]Rating {
	out := make(map[string]Rating)
	walkResult(spec, raw, func(si, qi int, r Rating) {
		out[form.Path(si, qi)] = r
	})
	return out
}

// MapByTitle maps the same result keyed by section title and question
// text, for human-readable exports.
func MapByTitle(spec form.Spec, raw json.RawMessage) map[string]map[string]Rating {
	out := make(map[string]map[string]Rating)
	walkResult(spec, raw, func(si, qi int, r Rating) {
		section := spec.Sections[si]
		if out[section.Title] == nil {
			out[section.Title] = make(map[string]Rating)
		}
		out[section.Title][section.Questions[qi].Question] = r
	})
	return out
}

func walkResult(spec form.Spec, raw json.RawMessage, assign func(si, qi int, r Rating)) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return
	}
	switch v := parsed.(type) {
	case []any:
		assignFlat(spec, parseFlatItems(v), assign)
	case map[string]any:
		assignNested(spec, v, assign)
	}
}

func parseFlatItems(items []any) []flatItem {
	out := make([]flatItem, 0, len(items))
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			out = append(out, flatItem{})
			continue
		}
		out = append(out, flatItem{
			sectionTitle: stringField(m, "sectionTitle"),
			comment:      stringField(m, "comment"),
			rate:         stringField(m, "rate"),
		})
	}
	return out
}

// assignFlat aligns flat result items to spec questions with two
// strategies: items grouped by normalized section title are consumed
// per matching section in question order; when a section's group runs
// dry, or its title matched no group at all, a single shared cursor
// over all items in original order takes over. Fallback entries with
// neither comment nor rate are skipped rather than written blank.
func assignFlat(spec form.Spec, items []flatItem, assign func(si, qi int, r Rating)) {
	groups := make(map[string][]int)
	for i, it := range items {
		key := normalizeTitle(it.sectionTitle)
		groups[key] = append(groups[key], i)
	}

	cursors := make(map[string]int)
	flat := 0

	for si, section := range spec.Sections {
		key := normalizeTitle(section.Title)
		idxs, matched := groups[key]
		for qi := range section.Questions {
			var item *flatItem
			if matched && cursors[key] < len(idxs) {
				item = &items[idxs[cursors[key]]]
				cursors[key]++
			} else {
				for flat < len(items) {
					cand := &items[flat]
					flat++
					if cand.comment == "" && cand.rate == "" {
						continue
					}
					item = cand
					break
				}
			}
			if item == nil {
				continue
			}
			assign(si, qi, Rating{Comment: item.comment, Rate: item.rate})
		}
	}
}

// assignNested is strictly positional: result.sections[i].questions[j]
// rates spec.sections[i].questions[j]. Shorter responses leave trailing
// questions unrated.
func assignNested(spec form.Spec, root map[string]any, assign func(si, qi int, r Rating)) {
	sections, _ := root["sections"].([]any)
	for si := range spec.Sections {
		if si >= len(sections) {
			return
		}
		section, ok := sections[si].(map[string]any)
		if !ok {
			continue
		}
		questions, _ := section["questions"].([]any)
		for qi := range spec.Sections[si].Questions {
			if qi >= len(questions) {
				break
			}
			q, ok := questions[qi].(map[string]any)
			if !ok {
				continue
			}
			assign(si, qi, Rating{
				Comment: stringField(q, "comment"),
				Rate:    stringField(q, "rate"),
			})
		}
	}
}

func normalizeTitle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
