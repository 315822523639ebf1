// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm talks to chat-completion providers (OpenAI, Anthropic and
// Ollama) and builds paper analyses, keyword sets and research context from
// their responses.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/pdiddy/paper-engine/pkg/types"
)

// Role is the author of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat message.
type Message struct {
	Role    Role
	Content string
}

// SystemMessage returns a system message.
func SystemMessage(content string) Message { return Message{Role: RoleSystem, Content: content} }

// UserMessage returns a user message.
func UserMessage(content string) Message { return Message{Role: RoleUser, Content: content} }

// AssistantMessage returns an assistant message.
func AssistantMessage(content string) Message { return Message{Role: RoleAssistant, Content: content} }

// DefaultMaxTokens bounds a completion when Config.MaxTokens is unset.
const DefaultMaxTokens = 4096

// Config controls a single completion. An empty Model selects the
// provider's default; a nil Temperature leaves the provider default.
type Config struct {
	Model       string
	Temperature *float64
	MaxTokens   int

	// JSON asks providers that support it to constrain output to JSON.
	JSON bool
}

func (c Config) maxTokens() int {
	if c.MaxTokens <= 0 {
		return DefaultMaxTokens
	}
	return c.MaxTokens
}

func (c Config) model(p Provider) string {
	if c.Model != "" {
		return c.Model
	}
	return p.DefaultModel()
}

// Provider is a chat-completion backend.
type Provider interface {
	Name() string
	DefaultModel() string
	Complete(ctx context.Context, messages []Message, cfg Config) (string, error)
}

// Default models per provider.
const (
	DefaultOpenAIModel    = "gpt-4o"
	DefaultAnthropicModel = "claude-sonnet-4-20250514"
	DefaultOllamaModel    = "llama3.2"
	DefaultOllamaBaseURL  = "http://localhost:11434"
)

var (
	// ErrEmptyResponse is returned when a provider answers with no text.
	ErrEmptyResponse = errors.New("empty response from LLM")

	// ErrMissingAPIKey is returned when a hosted provider has no API key.
	ErrMissingAPIKey = errors.New("LLM API key not configured")
)

// NewProvider builds the provider selected by cfg.Provider. httpClient may
// be nil.
func NewProvider(cfg types.LLMConfig, httpClient *http.Client) (Provider, error) {
	switch cfg.Provider {
	case types.ProviderOpenAI, "":
		return NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, firstNonEmpty(cfg.Model, cfg.OpenAIModel, DefaultOpenAIModel), httpClient)
	case types.ProviderAnthropic:
		return NewAnthropicProvider(cfg.AnthropicAPIKey, firstNonEmpty(cfg.Model, cfg.AnthropicModel, DefaultAnthropicModel), httpClient)
	case types.ProviderOllama:
		return NewOllamaProvider(firstNonEmpty(cfg.OllamaBaseURL, DefaultOllamaBaseURL), firstNonEmpty(cfg.Model, cfg.OllamaModel, DefaultOllamaModel), httpClient)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q (want openai, anthropic or ollama)", cfg.Provider)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
