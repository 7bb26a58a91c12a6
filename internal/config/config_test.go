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
	if cfg.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Env)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Errorf("expected default token TTL 30m, got %s", cfg.TokenTTL)
	}
	if cfg.LoginDelay != time.Second {
		t.Errorf("expected default login delay 1s, got %s", cfg.LoginDelay)
	}
	if len(cfg.CORSAllowedOrigins) != 0 {
		t.Errorf("expected no default CORS origins, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOGIN_DELAY", "0s")
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://patient.example.com, https://provider.example.com")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.LoginDelay != 0 {
		t.Errorf("expected zero login delay, got %s", cfg.LoginDelay)
	}
	if cfg.TokenTTL != 15*time.Minute {
		t.Errorf("expected token TTL 15m, got %s", cfg.TokenTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://provider.example.com" {
		t.Errorf("unexpected CORS origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestGetEnvAsDurationInvalid(t *testing.T) {
	t.Setenv("TOKEN_TTL", "not-a-duration")

	cfg := Load()
	if cfg.TokenTTL != 30*time.Minute {
		t.Errorf("expected fallback to default TTL, got %s", cfg.TokenTTL)
	}
}
