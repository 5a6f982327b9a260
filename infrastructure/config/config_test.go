package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "insights", cfg.DynamoDBTable)
	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.Equal(t, 60, cfg.LLMRPM)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9000")
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("LLM_RPM", "15")
	t.Setenv("ENABLE_EVENTS", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ServerAddress)
	assert.Equal(t, "anthropic", cfg.LLMProvider)
	assert.Equal(t, 15, cfg.LLMRPM)
	assert.True(t, cfg.EnableEvents)
}

func TestValidate_ProductionRequiresSecret(t *testing.T) {
	cfg := &Config{
		Environment:   "production",
		DynamoDBTable: "insights",
		LLMProvider:   "openai",
	}
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = "a-real-secret"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_ProductionRejectsMemoryStore(t *testing.T) {
	cfg := &Config{
		Environment:    "production",
		DynamoDBTable:  "insights",
		JWTSecret:      "a-real-secret",
		LLMProvider:    "openai",
		UseMemoryStore: true,
	}
	assert.Error(t, cfg.Validate())
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := &Config{
		Environment: "development",
		LLMProvider: "palmistry",
	}
	assert.Error(t, cfg.Validate())
}
