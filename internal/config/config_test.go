package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.RateLimitMax != 20 {
		t.Errorf("expected default rate limit max 20, got %d", cfg.RateLimitMax)
	}
	if cfg.RateLimitWindow != time.Minute {
		t.Errorf("expected default rate limit window 1m, got %s", cfg.RateLimitWindow)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("expected default model gpt-4o-mini, got %s", cfg.OpenAIModel)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT_MAX", "5")
	t.Setenv("COMPLETION_TIMEOUT", "3s")
	t.Setenv("REDIS_TLS", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.RateLimitMax != 5 {
		t.Errorf("expected rate limit max 5, got %d", cfg.RateLimitMax)
	}
	if cfg.CompletionTimeout != 3*time.Second {
		t.Errorf("expected completion timeout 3s, got %s", cfg.CompletionTimeout)
	}
	if !cfg.RedisTLS {
		t.Error("expected RedisTLS true")
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Errorf("unexpected CORS origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestGetEnvAsIntIgnoresGarbage(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX", "not-a-number")
	cfg := Load()
	if cfg.RateLimitMax != 20 {
		t.Errorf("expected fallback to 20, got %d", cfg.RateLimitMax)
	}
}
