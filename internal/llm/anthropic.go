// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicProvider calls the Anthropic Messages API.
type AnthropicProvider struct {
	client anthropic.Client
	model  string
}

// anthropicBaseURL is empty in production. Tests point it at an httptest
// server.
var anthropicBaseURL = ""

// NewAnthropicProvider returns an Anthropic provider.
func NewAnthropicProvider(apiKey, model string, httpClient *http.Client) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic: %w (set ANTHROPIC_API_KEY)", ErrMissingAPIKey)
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if anthropicBaseURL != "" {
		opts = append(opts, option.WithBaseURL(anthropicBaseURL))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}
	return &AnthropicProvider{client: anthropic.NewClient(opts...), model: model}, nil
}

func (p *AnthropicProvider) Name() string         { return "anthropic" }
func (p *AnthropicProvider) DefaultModel() string { return p.model }

// Complete sends messages and returns the concatenated text blocks. System
// messages are lifted into the request's system prompt.
func (p *AnthropicProvider) Complete(ctx context.Context, messages []Message, cfg Config) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(cfg.model(p)),
		MaxTokens: int64(cfg.maxTokens()),
	}
	if cfg.Temperature != nil {
		params.Temperature = anthropic.Float(*cfg.Temperature)
	}
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			params.System = append(params.System, anthropic.TextBlockParam{Text: m.Content})
		case RoleAssistant:
			params.Messages = append(params.Messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			params.Messages = append(params.Messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic completion: %w", err)
	}

	var b strings.Builder
	for _, c := range msg.Content {
		if block, ok := c.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("anthropic: %w", ErrEmptyResponse)
	}
	return b.String(), nil
}
