// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the source adapters and
// the PDF downloader.
package httputil

import (
	"context"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// RetryBaseDelay is the backoff base used when a Policy leaves BaseDelay
// unset. Tests override this to avoid real sleeps.
var RetryBaseDelay = time.Second

const defaultMaxRetries = 3

// Policy controls DoWithRetry. Zero values select the defaults: three
// retries starting at RetryBaseDelay.
type Policy struct {
	MaxRetries int
	BaseDelay  time.Duration
	Logger     *zap.Logger
}

func (p Policy) withDefaults() Policy {
	if p.MaxRetries <= 0 {
		p.MaxRetries = defaultMaxRetries
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = RetryBaseDelay
	}
	if p.Logger == nil {
		p.Logger = zap.NewNop()
	}
	return p
}

// retryable reports whether a status code is worth retrying: rate limiting
// and temporary unavailability.
func retryable(code int) bool {
	return code == http.StatusTooManyRequests || code == http.StatusServiceUnavailable
}

// DoWithRetry executes an HTTP request and retries on HTTP 429 and 503 with
// exponential backoff: BaseDelay, 2x, 4x, and so on.
//
// On each retryable response the body is drained and closed before
// sleeping. If the context is cancelled during a backoff wait the function
// returns ctx.Err(). After exhausting retries the last response is returned
// so the caller can inspect it. Requests with a body are not retried.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, policy Policy) (*http.Response, error) {
	policy = policy.withDefaults()
	if client == nil {
		client = http.DefaultClient
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if !retryable(resp.StatusCode) || attempt >= policy.MaxRetries || req.Body != nil {
			return resp, nil
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := policy.BaseDelay << attempt
		policy.Logger.Debug("retrying request",
			zap.String("url", req.URL.Redacted()),
			zap.Int("status", resp.StatusCode),
			zap.Duration("backoff", backoff),
			zap.Int("attempt", attempt+1),
			zap.Int("max_retries", policy.MaxRetries))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}
