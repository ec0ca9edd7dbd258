package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Load reads .env from the current directory and sets env vars.
// Safe to call multiple times; existing env vars are not overwritten.
func Load() error {
	return godotenv.Load()
}

// Env returns the deployment environment (APP_ENV), defaulting to production.
func Env() string {
	if v := strings.TrimSpace(os.Getenv("APP_ENV")); v != "" {
		return v
	}
	return "production"
}

// IsDevelopment reports whether error responses may carry full detail.
func IsDevelopment() bool {
	return Env() == "development"
}

// CORSOrigins returns the allowed browser origins (comma-separated in CORS_ORIGINS).
// Empty means allow all origins.
func CORSOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// StorageEndpoint returns the object storage host:port.
func StorageEndpoint() string {
	if v := os.Getenv("STORAGE_ENDPOINT"); v != "" {
		return v
	}
	return "localhost:9000"
}

// StorageAccessKey returns the object storage access key.
func StorageAccessKey() string {
	return os.Getenv("STORAGE_ACCESS_KEY")
}

// StorageSecretKey returns the object storage secret key.
func StorageSecretKey() string {
	return os.Getenv("STORAGE_SECRET_KEY")
}

// StorageBucket returns the bucket holding form documents.
func StorageBucket() string {
	if v := os.Getenv("STORAGE_BUCKET"); v != "" {
		return v
	}
	return "formloom"
}

// StorageUseSSL reports whether the storage endpoint is reached over TLS.
func StorageUseSSL() bool {
	return os.Getenv("STORAGE_USE_SSL") == "1" || strings.EqualFold(os.Getenv("STORAGE_USE_SSL"), "true")
}

// GeminiAPIKey returns the Google Gemini API key.
func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

// GeminiModel returns the Gemini model used for answer rating.
func GeminiModel() string {
	if m := strings.TrimSpace(os.Getenv("GEMINI_MODEL")); m != "" {
		return m
	}
	return "gemini-2.5-flash"
}

// GeminiTemperature returns the sampling temperature for rating calls.
func GeminiTemperature() float32 {
	if v := os.Getenv("GEMINI_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 && f <= 2 {
			return float32(f)
		}
	}
	return 0.2
}

// RateLimitWindow returns the fixed window for rate-limit counters.
func RateLimitWindow() time.Duration {
	if v := os.Getenv("RATE_LIMIT_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Minute
}

// RateLimitMax returns the per-window ceiling for all API requests.
// Zero disables the global limiter.
func RateLimitMax() int64 {
	if v := os.Getenv("RATE_LIMIT_MAX"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 {
			return n
		}
	}
	return 120
}

// LLMRateLimitMax returns the per-window ceiling for LLM-backed endpoints.
// Zero disables the LLM limiter.
func LLMRateLimitMax() int64 {
	if v := os.Getenv("LLM_RATE_LIMIT_MAX"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 {
			return n
		}
	}
	return 20
}

// RateLimitRedisAddr returns the optional Redis address backing the
// rate-limit store. Empty selects the in-process store.
func RateLimitRedisAddr() string {
	return strings.TrimSpace(os.Getenv("RATE_LIMIT_REDIS_ADDR"))
}

// RateLimitRedisPassword returns the password for the rate-limit Redis.
func RateLimitRedisPassword() string {
	return os.Getenv("RATE_LIMIT_REDIS_PASSWORD")
}

// ChromeBin returns an explicit Chrome/Chromium binary for PDF export.
// Empty lets the launcher discover one.
func ChromeBin() string {
	return strings.TrimSpace(os.Getenv("CHROME_BIN"))
}
