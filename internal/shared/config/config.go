package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultModel is the fixed Groq model identifier used for email generation.
const DefaultModel = "llama3-70b-8192"

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	LLMModel        string
	SecretsFile     string
	Env             string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of a local .env for dev convenience.
	_ = godotenv.Load()

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		LLMModel:        getEnv("LLM_MODEL", DefaultModel),
		SecretsFile:     getEnv("SECRETS_FILE", "secrets.toml"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
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
	default:
		return "dev"
	}
}
