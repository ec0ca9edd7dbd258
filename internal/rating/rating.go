// Package rating holds the per-answer judgement model and the mapper
// that reconciles loosely-shaped LLM rating output against a form spec.
package rating

// Validity tiers assigned by the model.
const (
	RateInvalid = "invalid"
	RatePartial = "partial"
	RateValid   = "valid"
)

// Rating is one judgement for one answer path.
type Rating struct {
	Comment            string `json:"comment"`
	Rate               string `json:"rate,omitempty"`
	SuggestionResponse string `json:"suggestionResponse,omitempty"`
}

// StripSuggestion clears SuggestionResponse unless the rate is partial
// or invalid; a suggested rewrite only makes sense for flawed answers.
func (r Rating) StripSuggestion() Rating {
	if r.Rate != RatePartial && r.Rate != RateInvalid {
		r.SuggestionResponse = ""
	}
	return r
}
