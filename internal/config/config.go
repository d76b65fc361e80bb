package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port          string
	Env           string
	LogLevel      string
	CORSOrigins   []string
	IntakeRate    float64
	IntakeBurst   int
	ServerTimeout time.Duration

	// CMS / lead store (Strapi).
	StrapiURL       string
	StrapiToken     string
	ContentCacheTTL time.Duration

	// Email notification transport.
	EmailProvider       string
	SMTPHost            string
	SMTPPort            int
	SMTPUser            string
	SMTPPass            string
	SMTPFrom            string
	SMTPSecure          bool
	SMTPAllowSelfSigned bool
	NotificationEmail   string

	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string

	AWSRegion    string
	SESFromEmail string
	SESFromName  string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "")),
		IntakeRate:    getEnvAsFloat("INTAKE_RATE_PER_SEC", 1),
		IntakeBurst:   getEnvAsInt("INTAKE_BURST", 5),
		ServerTimeout: getEnvAsDuration("SERVER_TIMEOUT", 15*time.Second),

		StrapiURL:       strings.TrimRight(getEnvFallback("STRAPI_URL", "NEXT_PUBLIC_STRAPI_URL", "http://localhost:1337"), "/"),
		StrapiToken:     getEnvFallback("STRAPI_TOKEN", "NEXT_PUBLIC_STRAPI_TOKEN", ""),
		ContentCacheTTL: getEnvAsDuration("CONTENT_CACHE_TTL", 60*time.Second),

		EmailProvider:       strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", "smtp"))),
		SMTPHost:            getEnv("SMTP_HOST", ""),
		SMTPPort:            getEnvAsInt("SMTP_PORT", 0),
		SMTPUser:            getEnv("SMTP_USER", ""),
		SMTPPass:            getEnv("SMTP_PASS", ""),
		SMTPFrom:            getEnv("SMTP_FROM", ""),
		SMTPSecure:          getEnvAsBool("SMTP_SECURE", false),
		SMTPAllowSelfSigned: getEnvAsBool("SMTP_ALLOW_SELF_SIGNED", false),
		NotificationEmail:   getEnv("NEWSLETTER_NOTIFICATION_EMAIL", ""),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", ""),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Bekwyn Law PC"),

		AWSRegion:    getEnv("AWS_REGION", "us-east-1"),
		SESFromEmail: getEnv("SES_FROM_EMAIL", ""),
		SESFromName:  getEnv("SES_FROM_NAME", "Bekwyn Law PC"),
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvFallback tries key, then the legacy fallback key. The fallback
// names survive from the site's previous deployment and may still be the
// only ones set.
func getEnvFallback(key, fallbackKey, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if value := os.Getenv(fallbackKey); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitCSV(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
