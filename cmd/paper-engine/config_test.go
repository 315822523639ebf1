package main

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/paper-engine/internal/secrets"
	"github.com/pdiddy/paper-engine/pkg/types"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SEMANTIC_SCHOLAR_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	v := viper.New()
	setDefaults(v)
	cfg := loadConfig(v, secrets.Secrets{})

	assert.Equal(t, 30*time.Second, cfg.Sources.Timeout)
	assert.Equal(t, 3, cfg.Sources.RetryCount)
	assert.Equal(t, time.Second, cfg.Sources.RetryWait)
	assert.Equal(t, "paper-engine/"+version, cfg.Sources.UserAgent)
	assert.Empty(t, cfg.Sources.SemanticScholarAPIKey)

	assert.Equal(t, types.ProviderOpenAI, cfg.LLM.Provider)
	assert.InDelta(t, 0.3, cfg.LLM.Temperature, 1e-9)
	assert.Equal(t, 4096, cfg.LLM.MaxTokens)

	assert.InDelta(t, 0.3, cfg.Export.Threshold, 1e-9)
	assert.Equal(t, 50, cfg.Export.MaxCitations)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfigOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("http.retry_wait", 0.5)
	v.Set("llm.provider", "Anthropic")
	v.Set("llm.model", "claude-test")
	v.Set("export.max_citations", 10)
	v.Set("export.threshold", 0.0)

	cfg := loadConfig(v, nil)

	assert.Equal(t, 500*time.Millisecond, cfg.Sources.RetryWait)
	assert.Equal(t, types.ProviderAnthropic, cfg.LLM.Provider)
	assert.Equal(t, "claude-test", cfg.LLM.Model)
	assert.Equal(t, 10, cfg.Export.MaxCitations)
	assert.Zero(t, cfg.Export.Threshold, "an explicit zero threshold is kept")
}

func TestLoadConfigSecretFallback(t *testing.T) {
	t.Setenv("SEMANTIC_SCHOLAR_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	s := secrets.Secrets{
		"semantic-scholar-api-key": "s2-file",
		"openai-api-key":           "openai-file",
		"anthropic-api-key":        "anthropic-file",
	}

	v := viper.New()
	setDefaults(v)
	v.Set("llm.openai_api_key", "openai-config")

	cfg := loadConfig(v, s)

	assert.Equal(t, "s2-file", cfg.Sources.SemanticScholarAPIKey)
	assert.Equal(t, "openai-config", cfg.LLM.OpenAIAPIKey, "configured value wins over key file")
	assert.Equal(t, "anthropic-file", cfg.LLM.AnthropicAPIKey)
}

func TestBindEnv(t *testing.T) {
	t.Setenv("PAPER_ENGINE_LLM_MODEL", "")
	t.Setenv("LLM_MODEL", "gpt-test")
	t.Setenv("PAPER_ENGINE_LLM_PROVIDER", "ollama")
	t.Setenv("LLM_PROVIDER", "anthropic")

	v := viper.New()
	setDefaults(v)
	bindEnv(v)

	assert.Equal(t, "gpt-test", v.GetString("llm.model"))
	assert.Equal(t, "ollama", v.GetString("llm.provider"), "prefixed variable is checked first")
}
