package form

import (
	"encoding/json"
	"strings"
	"testing"
)

func parseJSON(t *testing.T, raw string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return v
}

func TestValidateSpecEmptyObject(t *testing.T) {
	errs := ValidateSpec(parseJSON(t, `{}`))
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
	if !strings.Contains(errs[0], "`name` is required") {
		t.Fatalf("expected name error first, got %q", errs[0])
	}
	if errs[1] != "`sections` must be an array." {
		t.Fatalf("expected sections error, got %q", errs[1])
	}
}

func TestValidateSpecNonObjectRoot(t *testing.T) {
	errs := ValidateSpec(parseJSON(t, `[1,2]`))
	if len(errs) != 1 || !strings.Contains(errs[0], "must be a JSON object") {
		t.Fatalf("unexpected errors %v", errs)
	}
	if errs := ValidateSpec(nil); len(errs) != 1 {
		t.Fatalf("expected single error for nil, got %v", errs)
	}
}

func TestValidateSpecValid(t *testing.T) {
	raw := `{
		"name": "Survey",
		"sections": [{
			"title": "General",
			"questions": [
				{"type": "simple", "question": "Describe your role."},
				{"type": "option", "question": "Team size?", "options": ["1-5", "6+"]},
				{"type": "detailed", "question": "Projects", "attributes": [
					{"name": "Title", "width": 0.5, "inputType": "input"},
					{"name": "Outcome", "inputType": "textarea"}
				]},
				{"type": "image", "question": "Org chart"}
			]
		}]
	}`
	if errs := ValidateSpec(parseJSON(t, raw)); len(errs) != 0 {
		t.Fatalf("expected valid spec, got %v", errs)
	}
}

func TestValidateSpecDetailedMissingAttributes(t *testing.T) {
	raw := `{
		"name": "Survey",
		"sections": [{
			"title": "General",
			"questions": [{"type": "detailed", "question": "Projects"}]
		}]
	}`
	errs := ValidateSpec(parseJSON(t, raw))
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
	if errs[0] != "sections[0].questions[0].attributes must be an array." {
		t.Fatalf("unexpected error %q", errs[0])
	}
}

func TestValidateSpecUnknownType(t *testing.T) {
	raw := `{
		"name": "Survey",
		"sections": [{
			"title": "General",
			"questions": [{"type": "slider", "question": "Rate it"}]
		}]
	}`
	errs := ValidateSpec(parseJSON(t, raw))
	if len(errs) != 1 || !strings.Contains(errs[0], "type must be one of") {
		t.Fatalf("unexpected errors %v", errs)
	}
}

func TestValidateSpecAttributeChecks(t *testing.T) {
	raw := `{
		"name": "Survey",
		"sections": [{
			"title": "General",
			"questions": [{"type": "detailed", "question": "Projects", "attributes": [
				{"name": 7},
				{"name": "ok", "width": 1.5},
				{"name": "ok", "inputType": "dropdown"},
				"not-an-object"
			]}]
		}]
	}`
	errs := ValidateSpec(parseJSON(t, raw))
	if len(errs) != 4 {
		t.Fatalf("expected 4 errors, got %v", errs)
	}
	if !strings.Contains(errs[0], "attributes[0].name must be a string") {
		t.Fatalf("unexpected first error %q", errs[0])
	}
	if !strings.Contains(errs[1], "attributes[1].width") {
		t.Fatalf("unexpected second error %q", errs[1])
	}
	if !strings.Contains(errs[2], "attributes[2].inputType") {
		t.Fatalf("unexpected third error %q", errs[2])
	}
	if !strings.Contains(errs[3], "attributes[3] must be an object") {
		t.Fatalf("unexpected fourth error %q", errs[3])
	}
}

func TestValidateSpecSectionShape(t *testing.T) {
	raw := `{"name": "Survey", "sections": ["nope", {"questions": "x"}]}`
	errs := ValidateSpec(parseJSON(t, raw))
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %v", errs)
	}
	if errs[0] != "sections[0] must be an object." {
		t.Fatalf("unexpected error %q", errs[0])
	}
	if errs[1] != "sections[1].title must be a string." {
		t.Fatalf("unexpected error %q", errs[1])
	}
	if errs[2] != "sections[1].questions must be an array." {
		t.Fatalf("unexpected error %q", errs[2])
	}
}
