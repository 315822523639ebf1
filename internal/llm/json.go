// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// rawExcerptLen bounds the raw response kept in a ParseError.
const rawExcerptLen = 500

// ParseError reports a response that could not be decoded as the expected
// JSON shape.
type ParseError struct {
	// Raw holds at most the first 500 characters of the response.
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing JSON response: %v (response: %s)", e.Err, e.Raw)
}

func (e *ParseError) Unwrap() error { return e.Err }

// CompleteJSON runs a completion and decodes the reply into T.
func CompleteJSON[T any](ctx context.Context, p Provider, messages []Message, cfg Config) (T, error) {
	var zero T
	cfg.JSON = true
	text, err := p.Complete(ctx, messages, cfg)
	if err != nil {
		return zero, err
	}
	return ParseJSON[T](text)
}

// ParseJSON decodes a model reply into T. Replies wrapped in a ```json or
// bare ``` fence are unwrapped first.
func ParseJSON[T any](response string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(stripFence(response)), &v); err != nil {
		return v, &ParseError{Raw: excerpt(response, rawExcerptLen), Err: err}
	}
	return v, nil
}

// stripFence returns the body of the first fenced block, or the trimmed
// response when there is none.
func stripFence(s string) string {
	for _, open := range []string{"```json", "```"} {
		i := strings.Index(s, open)
		if i < 0 {
			continue
		}
		body := s[i+len(open):]
		if j := strings.Index(body, "```"); j >= 0 {
			body = body[:j]
		}
		return strings.TrimSpace(body)
	}
	return strings.TrimSpace(s)
}

func excerpt(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
