// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// OpenAIProvider calls the OpenAI chat completions API, or any server
// compatible with it when a base URL is given.
type OpenAIProvider struct {
	client openai.Client
	model  string
}

// NewOpenAIProvider returns an OpenAI provider. baseURL may be empty.
func NewOpenAIProvider(apiKey, baseURL, model string, httpClient *http.Client) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai: %w (set OPENAI_API_KEY)", ErrMissingAPIKey)
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}
	return &OpenAIProvider{client: openai.NewClient(opts...), model: model}, nil
}

func (p *OpenAIProvider) Name() string         { return "openai" }
func (p *OpenAIProvider) DefaultModel() string { return p.model }

// Complete sends messages and returns the first choice's content.
func (p *OpenAIProvider) Complete(ctx context.Context, messages []Message, cfg Config) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:               shared.ChatModel(cfg.model(p)),
		Messages:            make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)),
		MaxCompletionTokens: openai.Int(int64(cfg.maxTokens())),
	}
	if cfg.Temperature != nil {
		params.Temperature = openai.Float(*cfg.Temperature)
	}
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			params.Messages = append(params.Messages, openai.SystemMessage(m.Content))
		case RoleAssistant:
			params.Messages = append(params.Messages, openai.AssistantMessage(m.Content))
		default:
			params.Messages = append(params.Messages, openai.UserMessage(m.Content))
		}
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai: %w", ErrEmptyResponse)
	}
	return resp.Choices[0].Message.Content, nil
}
