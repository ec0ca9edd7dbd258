package llmapi

// ratingSchema is the structured-output contract for one field rating.
func ratingSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"required": []any{
			"comment",
		},
		"properties": map[string]any{
			"comment": map[string]any{
				"type": "string",
			},
			"rate": map[string]any{
				"type": "string",
				"enum": []any{"invalid", "partial", "valid"},
			},
			"suggestionResponse": map[string]any{
				"type": "string",
			},
		},
		"additionalProperties": false,
	}
}

// formRatingSchema is the structured-output contract for whole-form
// rating: a flat array, one item per answered question in form order.
func formRatingSchema() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"required": []any{
				"sectionTitle",
				"comment",
			},
			"properties": map[string]any{
				"sectionTitle": map[string]any{
					"type": "string",
				},
				"comment": map[string]any{
					"type": "string",
				},
				"rate": map[string]any{
					"type": "string",
					"enum": []any{"invalid", "partial", "valid"},
				},
			},
			"additionalProperties": false,
		},
	}
}
