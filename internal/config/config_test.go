package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.StrapiURL != "http://localhost:1337" {
		t.Errorf("expected default strapi url, got %s", cfg.StrapiURL)
	}
	if cfg.ContentCacheTTL != 60*time.Second {
		t.Errorf("expected 60s content cache TTL, got %s", cfg.ContentCacheTTL)
	}
	if cfg.EmailProvider != "smtp" {
		t.Errorf("expected smtp provider default, got %s", cfg.EmailProvider)
	}
}

func TestLoad_StrapiFallbackVariables(t *testing.T) {
	t.Setenv("STRAPI_URL", "")
	t.Setenv("NEXT_PUBLIC_STRAPI_URL", "https://cms.example.com/")
	t.Setenv("NEXT_PUBLIC_STRAPI_TOKEN", "legacy-token")

	cfg := Load()

	if cfg.StrapiURL != "https://cms.example.com" {
		t.Errorf("expected trimmed fallback url, got %s", cfg.StrapiURL)
	}
	if cfg.StrapiToken != "legacy-token" {
		t.Errorf("expected fallback token, got %s", cfg.StrapiToken)
	}
}

func TestLoad_PrimaryWinsOverFallback(t *testing.T) {
	t.Setenv("STRAPI_URL", "https://cms.primary.com")
	t.Setenv("NEXT_PUBLIC_STRAPI_URL", "https://cms.legacy.com")

	cfg := Load()

	if cfg.StrapiURL != "https://cms.primary.com" {
		t.Errorf("expected primary url to win, got %s", cfg.StrapiURL)
	}
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://bekwynlaw.com, https://www.bekwynlaw.com,")

	cfg := Load()

	if len(cfg.CORSOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %d", len(cfg.CORSOrigins))
	}
	if cfg.CORSOrigins[1] != "https://www.bekwynlaw.com" {
		t.Errorf("unexpected origin: %s", cfg.CORSOrigins[1])
	}
}

func TestLoad_SMTPSettings(t *testing.T) {
	t.Setenv("SMTP_HOST", "mail.example.com")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SMTP_SECURE", "true")
	t.Setenv("SMTP_ALLOW_SELF_SIGNED", "true")

	cfg := Load()

	if cfg.SMTPHost != "mail.example.com" || cfg.SMTPPort != 465 {
		t.Errorf("unexpected smtp host/port: %s/%d", cfg.SMTPHost, cfg.SMTPPort)
	}
	if !cfg.SMTPSecure || !cfg.SMTPAllowSelfSigned {
		t.Error("expected secure and self-signed flags set")
	}
}
