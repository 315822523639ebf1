package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// RetryCount is the number of retries on HTTP 429/503 (default 3).
	RetryCount int `json:"retry_count" yaml:"retry_count"`

	// RetryWait is the base backoff between retries (default 1s).
	RetryWait time.Duration `json:"retry_wait" yaml:"retry_wait"`
}

// SourceConfig holds settings for the two bibliographic sources.
type SourceConfig struct {
	HTTPConfig `yaml:",inline"`

	// SemanticScholarAPIKey is an optional API key for higher rate limits.
	SemanticScholarAPIKey string `json:"semantic_scholar_api_key,omitempty" yaml:"semantic_scholar_api_key,omitempty"`
}

// LLMProviderKind names a supported LLM provider.
type LLMProviderKind string

const (
	ProviderOpenAI    LLMProviderKind = "openai"
	ProviderAnthropic LLMProviderKind = "anthropic"
	ProviderOllama    LLMProviderKind = "ollama"
)

// LLMConfig holds settings for the LLM collaborators.
type LLMConfig struct {
	// Provider selects openai, anthropic or ollama (default openai).
	Provider LLMProviderKind `json:"provider" yaml:"provider"`

	// Model overrides the provider's default model for every provider.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`

	OpenAIAPIKey  string `json:"openai_api_key,omitempty" yaml:"openai_api_key,omitempty"`
	OpenAIModel   string `json:"openai_model,omitempty" yaml:"openai_model,omitempty"`
	OpenAIBaseURL string `json:"openai_base_url,omitempty" yaml:"openai_base_url,omitempty"`

	AnthropicAPIKey string `json:"anthropic_api_key,omitempty" yaml:"anthropic_api_key,omitempty"`
	AnthropicModel  string `json:"anthropic_model,omitempty" yaml:"anthropic_model,omitempty"`

	OllamaBaseURL string `json:"ollama_base_url,omitempty" yaml:"ollama_base_url,omitempty"`
	OllamaModel   string `json:"ollama_model,omitempty" yaml:"ollama_model,omitempty"`

	// Temperature is the sampling temperature for analysis (default 0.3).
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// MaxTokens bounds each completion (default 4096).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`
}

// ExportConfig holds defaults for the export command.
type ExportConfig struct {
	// Threshold is the fuzzy title distance accepted (default 0.3).
	Threshold float64 `json:"threshold" yaml:"threshold"`

	// MaxCitations bounds citations and references fetched (default 50).
	MaxCitations int `json:"max_citations" yaml:"max_citations"`
}

// Config groups all component configurations.
type Config struct {
	Sources  SourceConfig `json:"sources" yaml:"sources"`
	LLM      LLMConfig    `json:"llm" yaml:"llm"`
	Export   ExportConfig `json:"export" yaml:"export"`
	LogLevel string       `json:"log_level" yaml:"log_level"`
}
