package form

import (
	"fmt"
	"strings"
)

var questionTypes = map[string]bool{
	TypeSimple:   true,
	TypeOption:   true,
	TypeDetailed: true,
	TypeImage:    true,
}

// ValidateSpec checks an arbitrary parsed JSON value against the form
// spec schema and returns an ordered list of human-readable violations.
// An empty list means the value is a valid spec. It never panics;
// callers decide whether violations block persistence.
func ValidateSpec(v any) []string {
	var errs []string

	root, ok := v.(map[string]any)
	if !ok {
		return []string{"form spec must be a JSON object."}
	}

	if name, ok := root["name"].(string); !ok || strings.TrimSpace(name) == "" {
		errs = append(errs, "`name` is required and must be a non-empty string.")
	}

	sections, ok := root["sections"].([]any)
	if !ok {
		errs = append(errs, "`sections` must be an array.")
		return errs
	}

	for si, sv := range sections {
		section, ok := sv.(map[string]any)
		if !ok {
			errs = append(errs, fmt.Sprintf("sections[%d] must be an object.", si))
			continue
		}
		if _, ok := section["title"].(string); !ok {
			errs = append(errs, fmt.Sprintf("sections[%d].title must be a string.", si))
		}
		questions, ok := section["questions"].([]any)
		if !ok {
			errs = append(errs, fmt.Sprintf("sections[%d].questions must be an array.", si))
			continue
		}
		for qi, qv := range questions {
			errs = append(errs, validateQuestion(si, qi, qv)...)
		}
	}
	return errs
}

func validateQuestion(si, qi int, v any) []string {
	at := fmt.Sprintf("sections[%d].questions[%d]", si, qi)

	question, ok := v.(map[string]any)
	if !ok {
		return []string{at + " must be an object."}
	}

	var errs []string
	qtype, _ := question["type"].(string)
	if !questionTypes[qtype] {
		errs = append(errs, at+".type must be one of simple, option, detailed, image.")
	}
	if _, ok := question["question"].(string); !ok {
		errs = append(errs, at+".question must be a string.")
	}

	switch qtype {
	case TypeOption:
		if _, ok := question["options"].([]any); !ok {
			errs = append(errs, at+".options must be an array.")
		}
	case TypeDetailed:
		attrs, ok := question["attributes"].([]any)
		if !ok {
			errs = append(errs, at+".attributes must be an array.")
			break
		}
		for ai, av := range attrs {
			errs = append(errs, validateAttribute(at, ai, av)...)
		}
	}
	return errs
}

func validateAttribute(at string, ai int, v any) []string {
	loc := fmt.Sprintf("%s.attributes[%d]", at, ai)

	attr, ok := v.(map[string]any)
	if !ok {
		return []string{loc + " must be an object."}
	}

	var errs []string
	if _, ok := attr["name"].(string); !ok {
		errs = append(errs, loc+".name must be a string.")
	}
	if w, present := attr["width"]; present {
		if f, ok := w.(float64); !ok || f <= 0 || f > 1 {
			errs = append(errs, loc+".width must be a number greater than 0 and at most 1.")
		}
	}
	if it, present := attr["inputType"]; present {
		if s, ok := it.(string); !ok || (s != "input" && s != "textarea") {
			errs = append(errs, loc+`.inputType must be "input" or "textarea".`)
		}
	}
	return errs
}
