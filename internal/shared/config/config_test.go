package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "CORS_ALLOW_ORIGINS", "LLM_MODEL", "SECRETS_FILE", "ENV"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowOrigin)
	assert.Equal(t, DefaultModel, cfg.LLMModel)
	assert.Equal(t, "secrets.toml", cfg.SecretsFile)
	assert.Equal(t, "dev", cfg.Env)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LLM_MODEL", "llama-3.1-8b-instant")
	t.Setenv("SECRETS_FILE", "/etc/coldmail/secrets.toml")
	t.Setenv("ENV", "PROD")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigin)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.LLMModel)
	assert.Equal(t, "/etc/coldmail/secrets.toml", cfg.SecretsFile)
	assert.Equal(t, "production", cfg.Env)
}
