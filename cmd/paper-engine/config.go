package main

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/paper-engine/internal/network"
	"github.com/pdiddy/paper-engine/internal/search"
	"github.com/pdiddy/paper-engine/internal/secrets"
	"github.com/pdiddy/paper-engine/pkg/types"
)

// Config keys and the conventional environment variables that feed them.
// Each key can also be set as PAPER_ENGINE_<KEY> or in the config file.
var envBindings = map[string]string{
	"sources.semantic_scholar_api_key": "SEMANTIC_SCHOLAR_API_KEY",
	"http.retry_count":                 "API_RETRY_COUNT",
	"http.retry_wait":                  "API_RETRY_WAIT",
	"llm.provider":                     "LLM_PROVIDER",
	"llm.model":                        "LLM_MODEL",
	"llm.openai_api_key":               "OPENAI_API_KEY",
	"llm.openai_model":                 "OPENAI_MODEL",
	"llm.openai_base_url":              "OPENAI_BASE_URL",
	"llm.anthropic_api_key":            "ANTHROPIC_API_KEY",
	"llm.anthropic_model":              "ANTHROPIC_MODEL",
	"llm.ollama_base_url":              "OLLAMA_BASE_URL",
	"llm.ollama_model":                 "OLLAMA_MODEL",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.timeout", 30*time.Second)
	v.SetDefault("http.retry_count", 3)
	v.SetDefault("http.retry_wait", 1.0)
	v.SetDefault("llm.provider", string(types.ProviderOpenAI))
	v.SetDefault("llm.temperature", 0.3)
	v.SetDefault("llm.max_tokens", 4096)
	v.SetDefault("export.threshold", search.DefaultThreshold)
	v.SetDefault("export.max_citations", network.DefaultMaxCitations)
	v.SetDefault("log_level", "warn")
}

func bindEnv(v *viper.Viper) {
	for key, env := range envBindings {
		prefixed := "PAPER_ENGINE_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		v.BindEnv(key, prefixed, env)
	}
}

// loadConfig builds the typed configuration. Key files from .secrets/ fill
// API keys the environment and config file leave empty.
func loadConfig(v *viper.Viper, s secrets.Secrets) types.Config {
	httpCfg := types.HTTPConfig{
		Timeout:    v.GetDuration("http.timeout"),
		UserAgent:  "paper-engine/" + version,
		RetryCount: v.GetInt("http.retry_count"),
		RetryWait:  time.Duration(v.GetFloat64("http.retry_wait") * float64(time.Second)),
	}

	return types.Config{
		Sources: types.SourceConfig{
			HTTPConfig:            httpCfg,
			SemanticScholarAPIKey: orSecret(v.GetString("sources.semantic_scholar_api_key"), s, "SEMANTIC_SCHOLAR_API_KEY"),
		},
		LLM: types.LLMConfig{
			Provider:        types.LLMProviderKind(strings.ToLower(v.GetString("llm.provider"))),
			Model:           v.GetString("llm.model"),
			OpenAIAPIKey:    orSecret(v.GetString("llm.openai_api_key"), s, "OPENAI_API_KEY"),
			OpenAIModel:     v.GetString("llm.openai_model"),
			OpenAIBaseURL:   v.GetString("llm.openai_base_url"),
			AnthropicAPIKey: orSecret(v.GetString("llm.anthropic_api_key"), s, "ANTHROPIC_API_KEY"),
			AnthropicModel:  v.GetString("llm.anthropic_model"),
			OllamaBaseURL:   v.GetString("llm.ollama_base_url"),
			OllamaModel:     v.GetString("llm.ollama_model"),
			Temperature:     v.GetFloat64("llm.temperature"),
			MaxTokens:       v.GetInt("llm.max_tokens"),
		},
		Export: types.ExportConfig{
			Threshold:    v.GetFloat64("export.threshold"),
			MaxCitations: v.GetInt("export.max_citations"),
		},
		LogLevel: v.GetString("log_level"),
	}
}

func orSecret(value string, s secrets.Secrets, env string) string {
	if value != "" {
		return value
	}
	return s.Lookup(env)
}
