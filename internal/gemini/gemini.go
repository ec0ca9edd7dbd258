// Package gemini wraps the Google GenAI SDK behind a small client used
// for structured-output answer rating.
package gemini

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

const defaultTimeout = 45 * time.Second

// Client issues structured-output calls against one configured model.
// Construct it once at startup and pass it to handlers.
type Client struct {
	api         *genai.Client
	model       string
	temperature float32
}

// Request is one structured-output call.
type Request struct {
	SystemPrompt    string
	UserPrompt      string
	ResponseSchema  any
	MaxOutputTokens int32
}

// Usage echoes the provider's token accounting.
type Usage struct {
	PromptTokens     int32 `json:"prompt_tokens"`
	CandidateTokens  int32 `json:"candidate_tokens"`
	TotalTokens      int32 `json:"total_tokens"`
	CachedTokenCount int32 `json:"cached_token_count"`
}

// Response carries the raw model text plus metadata.
type Response struct {
	Text  string
	Usage *Usage
	Model string
}

// NewClient builds a Gemini client from explicit configuration.
func NewClient(ctx context.Context, apiKey, model string, temperature float32) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key not set")
	}
	api, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Client{api: api, model: model, temperature: temperature}, nil
}

// ModelName returns the configured model.
func (c *Client) ModelName() string {
	return c.model
}

func (c *Client) buildConfig(req Request) *genai.GenerateContentConfig {
	temperature := c.temperature
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemPrompt}},
		},
		Temperature:     &temperature,
		MaxOutputTokens: req.MaxOutputTokens,
	}
	if req.ResponseSchema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseJsonSchema = req.ResponseSchema
	}
	return cfg
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, defaultTimeout)
}

func extractUsage(meta *genai.GenerateContentResponseUsageMetadata) *Usage {
	if meta == nil {
		return nil
	}
	return &Usage{
		PromptTokens:     meta.PromptTokenCount,
		CandidateTokens:  meta.CandidatesTokenCount,
		TotalTokens:      meta.TotalTokenCount,
		CachedTokenCount: meta.CachedContentTokenCount,
	}
}

// Generate runs one structured prompt and returns the raw text response.
// A default timeout applies when the caller's context has no deadline.
func (c *Client) Generate(ctx context.Context, req Request) (Response, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	contents := []*genai.Content{{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: req.UserPrompt}},
	}}
	result, err := c.api.Models.GenerateContent(ctx, c.model, contents, c.buildConfig(req))
	if err != nil {
		return Response{}, fmt.Errorf("generate content: %w", err)
	}
	return Response{
		Text:  result.Text(),
		Usage: extractUsage(result.UsageMetadata),
		Model: c.model,
	}, nil
}
