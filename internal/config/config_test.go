package config

import (
	"testing"
	"time"
)

func TestEnvDefaultsToProduction(t *testing.T) {
	t.Setenv("APP_ENV", "")
	if got := Env(); got != "production" {
		t.Fatalf("expected production, got %q", got)
	}
	if IsDevelopment() {
		t.Fatalf("expected IsDevelopment false by default")
	}

	t.Setenv("APP_ENV", "development")
	if !IsDevelopment() {
		t.Fatalf("expected IsDevelopment true")
	}
}

func TestCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "")
	if got := CORSOrigins(); got != nil {
		t.Fatalf("expected nil for empty, got %v", got)
	}

	t.Setenv("CORS_ORIGINS", "http://localhost:5173, http://localhost:4173,")
	got := CORSOrigins()
	if len(got) != 2 {
		t.Fatalf("expected 2 origins, got %v", got)
	}
	if got[0] != "http://localhost:5173" || got[1] != "http://localhost:4173" {
		t.Fatalf("unexpected origins %v", got)
	}
}

func TestGeminiTemperature(t *testing.T) {
	t.Setenv("GEMINI_TEMPERATURE", "")
	if got := GeminiTemperature(); got != 0.2 {
		t.Fatalf("expected default 0.2, got %v", got)
	}

	t.Setenv("GEMINI_TEMPERATURE", "0.7")
	if got := GeminiTemperature(); got != 0.7 {
		t.Fatalf("expected 0.7, got %v", got)
	}

	t.Setenv("GEMINI_TEMPERATURE", "9")
	if got := GeminiTemperature(); got != 0.2 {
		t.Fatalf("expected default for out-of-range, got %v", got)
	}

	t.Setenv("GEMINI_TEMPERATURE", "nope")
	if got := GeminiTemperature(); got != 0.2 {
		t.Fatalf("expected default for invalid, got %v", got)
	}
}

func TestRateLimitWindow(t *testing.T) {
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "")
	if got := RateLimitWindow(); got != time.Minute {
		t.Fatalf("expected default 1m, got %v", got)
	}

	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "10")
	if got := RateLimitWindow(); got != 10*time.Second {
		t.Fatalf("expected 10s, got %v", got)
	}

	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "-1")
	if got := RateLimitWindow(); got != time.Minute {
		t.Fatalf("expected default for negative, got %v", got)
	}
}

func TestRateLimitMax(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX", "")
	if got := RateLimitMax(); got != 120 {
		t.Fatalf("expected default 120, got %d", got)
	}

	t.Setenv("RATE_LIMIT_MAX", "0")
	if got := RateLimitMax(); got != 0 {
		t.Fatalf("expected 0 to disable, got %d", got)
	}

	t.Setenv("RATE_LIMIT_MAX", "-3")
	if got := RateLimitMax(); got != 120 {
		t.Fatalf("expected default for negative, got %d", got)
	}
}
