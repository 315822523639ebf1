// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-engine/pkg/types"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name      string
		cfg       types.LLMConfig
		wantName  string
		wantModel string
		wantErr   error
	}{
		{"openai default", types.LLMConfig{OpenAIAPIKey: "k"}, "openai", DefaultOpenAIModel, nil},
		{"openai model override", types.LLMConfig{Provider: types.ProviderOpenAI, OpenAIAPIKey: "k", OpenAIModel: "gpt-4o-mini"}, "openai", "gpt-4o-mini", nil},
		{"shared model wins", types.LLMConfig{Provider: types.ProviderOpenAI, OpenAIAPIKey: "k", OpenAIModel: "gpt-4o-mini", Model: "o3"}, "openai", "o3", nil},
		{"anthropic", types.LLMConfig{Provider: types.ProviderAnthropic, AnthropicAPIKey: "k"}, "anthropic", DefaultAnthropicModel, nil},
		{"ollama needs no key", types.LLMConfig{Provider: types.ProviderOllama}, "ollama", DefaultOllamaModel, nil},
		{"openai without key", types.LLMConfig{Provider: types.ProviderOpenAI}, "", "", ErrMissingAPIKey},
		{"anthropic without key", types.LLMConfig{Provider: types.ProviderAnthropic}, "", "", ErrMissingAPIKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.cfg, nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, p.Name())
			assert.Equal(t, tt.wantModel, p.DefaultModel())
		})
	}
}

func TestNewProviderUnknown(t *testing.T) {
	_, err := NewProvider(types.LLMConfig{Provider: "watson"}, nil)
	assert.ErrorContains(t, err, "unknown LLM provider")
}

func TestOpenAIComplete(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"chatcmpl-1","object":"chat.completion","created":1,"model":"gpt-4o",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"hello there"}}]}`)
	}))
	defer srv.Close()

	p, err := NewOpenAIProvider("sk-test", srv.URL+"/", DefaultOpenAIModel, srv.Client())
	require.NoError(t, err)

	temp := 0.3
	got, err := p.Complete(context.Background(), []Message{SystemMessage("sys"), UserMessage("hi")}, Config{Temperature: &temp, MaxTokens: 100})

	require.NoError(t, err)
	assert.Equal(t, "hello there", got)
	assert.Equal(t, "gpt-4o", body["model"])
	assert.EqualValues(t, 100, body["max_completion_tokens"])
	assert.InDelta(t, 0.3, body["temperature"], 1e-9)
	msgs := body["messages"].([]any)
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
}

func TestOpenAIEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"chatcmpl-1","object":"chat.completion","created":1,"model":"gpt-4o","choices":[]}`)
	}))
	defer srv.Close()

	p, err := NewOpenAIProvider("sk-test", srv.URL+"/", DefaultOpenAIModel, srv.Client())
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), []Message{UserMessage("hi")}, Config{})

	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestAnthropicComplete(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "sk-ant", r.Header.Get("X-Api-Key"))
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"msg_1","type":"message","role":"assistant","model":"claude-sonnet-4-20250514",
			"content":[{"type":"text","text":"part one, "},{"type":"text","text":"part two"}],
			"stop_reason":"end_turn","usage":{"input_tokens":3,"output_tokens":4}}`)
	}))
	defer srv.Close()

	old := anthropicBaseURL
	anthropicBaseURL = srv.URL + "/"
	defer func() { anthropicBaseURL = old }()

	p, err := NewAnthropicProvider("sk-ant", DefaultAnthropicModel, srv.Client())
	require.NoError(t, err)

	got, err := p.Complete(context.Background(), []Message{SystemMessage("be brief"), UserMessage("hi")}, Config{})

	require.NoError(t, err)
	assert.Equal(t, "part one, part two", got)
	assert.Equal(t, DefaultAnthropicModel, body["model"])
	assert.EqualValues(t, DefaultMaxTokens, body["max_tokens"])
	system := body["system"].([]any)
	assert.Equal(t, "be brief", system[0].(map[string]any)["text"])
	assert.Len(t, body["messages"].([]any), 1, "system messages are not sent as turns")
}

func TestOllamaComplete(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `{"model":"llama3.2","created_at":"2026-01-01T00:00:00Z","message":{"role":"assistant","content":"{\"a\": \"x\", \"b\": 1}"},"done":true}`)
	}))
	defer srv.Close()

	p, err := NewOllamaProvider(srv.URL, DefaultOllamaModel, srv.Client())
	require.NoError(t, err)

	got, err := CompleteJSON[pair](context.Background(), p, []Message{UserMessage("json please")}, Config{})

	require.NoError(t, err)
	assert.Equal(t, pair{A: "x", B: 1}, got)
	assert.Equal(t, "llama3.2", body["model"])
	assert.Equal(t, false, body["stream"])
	assert.Equal(t, "json", body["format"])
	opts := body["options"].(map[string]any)
	assert.EqualValues(t, DefaultMaxTokens, opts["num_predict"])
}
