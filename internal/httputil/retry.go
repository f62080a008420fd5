// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"
)

// RetryBaseDelay is the base duration for exponential backoff. Tests
// override this to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

const defaultMaxRetries = 3

// retryableStatus reports whether a response status is worth retrying:
// rate limiting (429) and transient upstream failures (502, 503, 504).
// ScraperAPI and SerpApi both surface provider congestion this way.
func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// DoWithRetry executes an HTTP request and retries retryable statuses with
// exponential backoff (base doubles each attempt). A Retry-After header in
// whole seconds overrides the computed backoff. When maxRetries is 0 the
// default (3) is used. The response body is drained and closed before each
// retry. If the context is cancelled during a wait the context error is
// returned. After exhausting retries the last response is returned so the
// caller can report its status.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	backoff := RetryBaseDelay
	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if !retryableStatus(resp.StatusCode) || attempt >= maxRetries {
			return resp, nil
		}

		wait := backoff
		if ra := resp.Header.Get("Retry-After"); ra != "" {
			if secs, err := strconv.Atoi(ra); err == nil && secs > 0 {
				wait = time.Duration(secs) * time.Second
			}
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
		backoff *= 2
	}
}
