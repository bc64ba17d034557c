// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP client helpers used to fetch remote
// pictures.
package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// RetryBaseDelay is the first backoff wait; it doubles on every attempt.
// Tests override this to avoid real sleeps.
var RetryBaseDelay = 1 * time.Second

const defaultMaxRetries = 3

// ErrTooLarge is returned by GetLimited when the body exceeds the limit.
var ErrTooLarge = errors.New("response body too large")

// Retryable reports whether a response status is worth another attempt:
// throttling and transient gateway failures.
func Retryable(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// DoWithRetry executes req and retries retryable statuses with exponential
// backoff starting at RetryBaseDelay. When maxRetries is 0 the default (3)
// is used. The body of a retried response is drained and closed before
// sleeping. A cancelled context during a wait returns ctx.Err(). After the
// last retry the final response is returned as-is for the caller to inspect.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int, log logrus.FieldLogger) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}
		if !Retryable(resp.StatusCode) || attempt >= maxRetries {
			return resp, nil
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := RetryBaseDelay << attempt
		log.WithFields(logrus.Fields{
			"url":     req.URL.Redacted(),
			"status":  resp.StatusCode,
			"attempt": attempt + 1,
			"backoff": backoff,
		}).Debug("retrying request")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}

// GetLimited downloads url with the given request headers and returns at
// most limit bytes of body. Any non-200 final status is an error; a longer
// body returns ErrTooLarge.
func GetLimited(ctx context.Context, client *http.Client, url string, header http.Header, maxRetries int, limit int64, log logrus.FieldLogger) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := DoWithRetry(ctx, client, req, maxRetries, log)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, limit)
	}
	return data, nil
}
