package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Defaults used when the corresponding env vars are unset. The price id is
// the live one-time "full verdict" product.
const (
	DefaultStripePriceID = "price_1T2R7bEeXYHG1BG460BZeRaZ"
	DefaultSiteOrigin    = "https://cashorclout.com"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	AnthropicAPIKey string
	LLMModel        string
	StripeSecretKey string
	StripePriceID   string
	SiteOrigin      string
	DatabaseURL     string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	for _, path := range []string{".env", "cmd/.env"} {
		_ = godotenv.Load(path)
	}

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             env,
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		LLMModel:        getEnv("LLM_MODEL", "claude-sonnet-4-6"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		StripePriceID:   getEnv("STRIPE_PRICE_ID", DefaultStripePriceID),
		SiteOrigin:      getEnv("SITE_ORIGIN", DefaultSiteOrigin),
		DatabaseURL:     dbURL,
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
