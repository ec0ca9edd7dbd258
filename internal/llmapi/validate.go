package llmapi

import (
	"strings"
	"unicode/utf8"

	"formloom/internal/config"
)

type fieldInput struct {
	question string
	value    string
	examples []string
	rowData  map[string]any
}

// validateFieldInput checks the loosely-typed request fields shared by
// the two field-rating endpoints. It returns a specific message for the
// first violation found; empty means valid.
func validateFieldInput(question, value, examples any) (fieldInput, string) {
	var in fieldInput

	q, ok := question.(string)
	if !ok || strings.TrimSpace(q) == "" {
		return in, "Question is required and must be a string"
	}
	if utf8.RuneCountInString(q) > config.MaxQuestionChars {
		return in, "Question exceeds maximum length of 1000 characters"
	}
	in.question = q

	v, ok := value.(string)
	if !ok || strings.TrimSpace(v) == "" {
		return in, "Value is required and must be a non-empty string"
	}
	if utf8.RuneCountInString(v) > config.MaxValueChars {
		return in, "Value exceeds maximum length of 10000 characters"
	}
	in.value = v

	if examples != nil {
		arr, ok := examples.([]any)
		if !ok {
			return in, "Examples must be an array"
		}
		if len(arr) > config.MaxExamples {
			return in, "Examples must contain at most 10 items"
		}
		for _, e := range arr {
			s, ok := e.(string)
			if !ok || utf8.RuneCountInString(s) > config.MaxExampleChars {
				return in, "Each example must be a string of at most 1000 characters"
			}
			in.examples = append(in.examples, s)
		}
	}
	return in, ""
}
