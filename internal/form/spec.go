// Package form defines the JSON form specification shared by the
// authoring UI, the fill-in UI, answer rating, and PDF export.
package form

import (
	"fmt"
	"regexp"
	"strings"
)

// Question type tags.
const (
	TypeSimple   = "simple"
	TypeOption   = "option"
	TypeDetailed = "detailed"
	TypeImage    = "image"
)

// Spec is a complete form: an ordered list of sections of typed questions.
type Spec struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Sections    []Section `json:"sections"`
}

// Section groups questions. Its index is part of every answer path.
type Section struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions"`
}

// Question is a tagged union on Type. Only the fields matching the tag
// are meaningful; the rest stay zero and are omitted on the wire.
type Question struct {
	Type        string `json:"type"`
	Question    string `json:"question"`
	Description string `json:"description,omitempty"`

	// simple
	Multiple bool     `json:"multiple,omitempty"`
	Examples []string `json:"examples,omitempty"`

	// option
	Options       []string `json:"options,omitempty"`
	Justification bool     `json:"justification,omitempty"`

	// detailed
	Attributes []Attribute `json:"attributes,omitempty"`
}

// Attribute describes one column of a detailed (tabular) question.
type Attribute struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Options     []string `json:"options,omitempty"`
	Examples    []string `json:"examples,omitempty"`
	Width       float64  `json:"width,omitempty"`     // fraction of table width, (0,1]
	InputType   string   `json:"inputType,omitempty"` // "input" or "textarea"
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonSlugRe    = regexp.MustCompile(`[^a-z0-9_-]`)
)

// SlugID derives the durable storage identifier from a form's display
// name: lowercase, whitespace runs become one hyphen, everything else
// outside [a-z0-9_-] is stripped. Renaming a form changes its slug.
func SlugID(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = whitespaceRe.ReplaceAllString(s, "-")
	return nonSlugRe.ReplaceAllString(s, "")
}

// Path returns the canonical answer/rating key for a question:
// "s{sectionIndex}.q{questionIndex}".
func Path(sectionIndex, questionIndex int) string {
	return fmt.Sprintf("s%d.q%d", sectionIndex, questionIndex)
}
