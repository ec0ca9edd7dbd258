package gemini

import (
	"context"
	"testing"
	"time"

	"google.golang.org/genai"
)

func TestBuildConfig(t *testing.T) {
	c := &Client{model: "gemini-2.5-flash", temperature: 0.4}
	schema := map[string]any{"type": "object"}
	cfg := c.buildConfig(Request{
		SystemPrompt:    "be terse",
		ResponseSchema:  schema,
		MaxOutputTokens: 256,
	})

	if cfg.Temperature == nil || *cfg.Temperature != 0.4 {
		t.Fatalf("expected temperature 0.4, got %v", cfg.Temperature)
	}
	if cfg.MaxOutputTokens != 256 {
		t.Fatalf("expected 256 max tokens, got %d", cfg.MaxOutputTokens)
	}
	if cfg.ResponseMIMEType != "application/json" {
		t.Fatalf("expected JSON response type, got %q", cfg.ResponseMIMEType)
	}
	if cfg.SystemInstruction == nil || cfg.SystemInstruction.Parts[0].Text != "be terse" {
		t.Fatalf("unexpected system instruction %+v", cfg.SystemInstruction)
	}
}

func TestBuildConfigNoSchema(t *testing.T) {
	c := &Client{}
	cfg := c.buildConfig(Request{UserPrompt: "hi"})
	if cfg.ResponseMIMEType != "" || cfg.ResponseJsonSchema != nil {
		t.Fatalf("expected no structured output config, got %+v", cfg)
	}
}

func TestWithTimeoutAddsDeadline(t *testing.T) {
	ctx, cancel := withTimeout(context.Background())
	defer cancel()
	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("expected a deadline")
	}
	if time.Until(deadline) > defaultTimeout {
		t.Fatalf("deadline too far out: %v", deadline)
	}
}

func TestWithTimeoutKeepsCallerDeadline(t *testing.T) {
	parent, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ctx, cancel2 := withTimeout(parent)
	defer cancel2()
	if ctx != parent {
		t.Fatal("expected caller context reused when it has a deadline")
	}
}

func TestExtractUsage(t *testing.T) {
	if u := extractUsage(nil); u != nil {
		t.Fatalf("expected nil usage, got %+v", u)
	}
	u := extractUsage(&genai.GenerateContentResponseUsageMetadata{
		PromptTokenCount:     10,
		CandidatesTokenCount: 20,
		TotalTokenCount:      30,
	})
	if u.PromptTokens != 10 || u.CandidateTokens != 20 || u.TotalTokens != 30 {
		t.Fatalf("unexpected usage %+v", u)
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient(context.Background(), "", "gemini-2.5-flash", 0.2); err == nil {
		t.Fatal("expected error for empty API key")
	}
}
