// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Use a tiny base delay so tests finish quickly.
	RetryBaseDelay = 1 * time.Millisecond
}

// flaky answers with status for the first n calls and 200 afterwards.
func flaky(n int32, status int, calls *int32) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(calls, 1) <= n {
			w.WriteHeader(status)
			return
		}
		w.Write([]byte("payload"))
	}
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(http.StatusTooManyRequests))
	assert.True(t, Retryable(http.StatusServiceUnavailable))
	assert.True(t, Retryable(http.StatusBadGateway))
	assert.False(t, Retryable(http.StatusOK))
	assert.False(t, Retryable(http.StatusNotFound))
	assert.False(t, Retryable(http.StatusInternalServerError))
}

func TestDoWithRetry(t *testing.T) {
	tests := []struct {
		name       string
		failures   int32
		status     int
		maxRetries int
		wantStatus int
		wantCalls  int32
	}{
		{name: "immediate success", failures: 0, status: http.StatusOK, maxRetries: 3, wantStatus: http.StatusOK, wantCalls: 1},
		{name: "throttled then ok", failures: 2, status: http.StatusTooManyRequests, maxRetries: 3, wantStatus: http.StatusOK, wantCalls: 3},
		{name: "unavailable then ok", failures: 1, status: http.StatusServiceUnavailable, maxRetries: 3, wantStatus: http.StatusOK, wantCalls: 2},
		{name: "exhausts retries", failures: 100, status: http.StatusTooManyRequests, maxRetries: 2, wantStatus: http.StatusTooManyRequests, wantCalls: 3},
		{name: "default retries", failures: 100, status: http.StatusBadGateway, maxRetries: 0, wantStatus: http.StatusBadGateway, wantCalls: 4},
		{name: "non retryable passes through", failures: 100, status: http.StatusNotFound, maxRetries: 3, wantStatus: http.StatusNotFound, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			ts := httptest.NewServer(flaky(tt.failures, tt.status, &calls))
			defer ts.Close()

			req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
			require.NoError(t, err)

			resp, err := DoWithRetry(context.Background(), ts.Client(), req, tt.maxRetries, nil)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantCalls, atomic.LoadInt32(&calls))
		})
	}
}

func TestDoWithRetry_LogsRetries(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(flaky(1, http.StatusTooManyRequests, &calls))
	defer ts.Close()

	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)

	resp, err := DoWithRetry(context.Background(), ts.Client(), req, 3, log)
	require.NoError(t, err)
	resp.Body.Close()

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, "retrying request", entry.Message)
	assert.Equal(t, http.StatusTooManyRequests, entry.Data["status"])
}

func TestDoWithRetry_ContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	// Use a longer base delay so the context cancels during the wait.
	old := RetryBaseDelay
	RetryBaseDelay = 500 * time.Millisecond
	defer func() { RetryBaseDelay = old }()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)

	_, err = DoWithRetry(ctx, ts.Client(), req, 5, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGetLimited(t *testing.T) {
	var gotUA, gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAuth = r.Header.Get("Authorization")
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte("0123456789"))
		case "/missing":
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	t.Run("within limit", func(t *testing.T) {
		header := http.Header{}
		header.Set("User-Agent", "deckgen-test")
		header.Set("Authorization", "Bearer tok")
		data, err := GetLimited(context.Background(), ts.Client(), ts.URL+"/ok", header, 1, 10, nil)
		require.NoError(t, err)
		assert.Equal(t, "0123456789", string(data))
		assert.Equal(t, "deckgen-test", gotUA)
		assert.Equal(t, "Bearer tok", gotAuth)
	})

	t.Run("over limit", func(t *testing.T) {
		_, err := GetLimited(context.Background(), ts.Client(), ts.URL+"/ok", nil, 1, 9, nil)
		assert.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := GetLimited(context.Background(), ts.Client(), ts.URL+"/missing", nil, 1, 100, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})
}
