// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"
)

// OllamaProvider calls a local Ollama server. No API key is needed.
type OllamaProvider struct {
	client *api.Client
	model  string
}

// NewOllamaProvider returns an Ollama provider for the server at baseURL.
func NewOllamaProvider(baseURL, model string, httpClient *http.Client) (*OllamaProvider, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing Ollama base URL %q: %w", baseURL, err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &OllamaProvider{client: api.NewClient(u, httpClient), model: model}, nil
}

func (p *OllamaProvider) Name() string         { return "ollama" }
func (p *OllamaProvider) DefaultModel() string { return p.model }

// Complete sends a non-streaming chat request.
func (p *OllamaProvider) Complete(ctx context.Context, messages []Message, cfg Config) (string, error) {
	stream := false
	req := &api.ChatRequest{
		Model:    cfg.model(p),
		Stream:   &stream,
		Messages: make([]api.Message, 0, len(messages)),
		Options:  map[string]any{"num_predict": cfg.maxTokens()},
	}
	if cfg.Temperature != nil {
		req.Options["temperature"] = *cfg.Temperature
	}
	if cfg.JSON {
		req.Format = json.RawMessage(`"json"`)
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, api.Message{Role: string(m.Role), Content: m.Content})
	}

	var b strings.Builder
	err := p.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		b.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama chat: %w", err)
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("ollama: %w", ErrEmptyResponse)
	}
	return b.String(), nil
}
