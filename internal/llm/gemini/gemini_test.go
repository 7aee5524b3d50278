package gemini_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/claubot/clau/internal/llm/gemini"
	"github.com/claubot/clau/pkg/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const answerBody = `{"candidates":[{"content":{"parts":[{"text":"hello "},{"text":"world"}]}}]}`

// newClient points a client at the given test server with fast backoff.
func newClient(t *testing.T, baseURL, apiKey string) *gemini.Client {
	t.Helper()
	return gemini.New(gemini.Config{
		BaseURL:   baseURL,
		Timeout:   2 * time.Second,
		BaseDelay: time.Millisecond,
	}, apiKey, zap.NewNop())
}

func userContents(text string) []llm.Content {
	return []llm.Content{{Role: llm.RoleUser, Parts: []llm.Part{{Text: text}}}}
}

func TestGenerateContent_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(answerBody))
	}))
	defer srv.Close()

	res, err := newClient(t, srv.URL, "test-key").GenerateContent(context.Background(), userContents("hi"))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Retries)
	assert.Equal(t, "hello world", res.Text)
	assert.EqualValues(t, 3, calls.Load())
}

func TestGenerateContent_ExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL, "test-key").GenerateContent(context.Background(), userContents("hi"))
	require.Error(t, err)
	assert.True(t, llm.IsServerError(err))
	assert.True(t, llm.IsRetryable(err))
	assert.EqualValues(t, 3, calls.Load(), "default MaxAttempts is 3")
}

func TestGenerateContent_PermanentFailureNoRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, `{"error":{"message":"API key not valid"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL, "bad-key").GenerateContent(context.Background(), userContents("hi"))
	require.Error(t, err)
	assert.True(t, llm.IsUpstreamError(err))
	assert.False(t, llm.IsRetryable(err))
	assert.EqualValues(t, 1, calls.Load(), "permanent failures must not be retried")

	var pe *llm.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, http.StatusUnauthorized, pe.StatusCode)
	assert.Contains(t, pe.Message, "API key not valid")
}

func TestGenerateContent_MissingAPIKey(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, "")
	assert.False(t, c.Configured())

	_, err := c.GenerateContent(context.Background(), userContents("hi"))
	require.Error(t, err)
	assert.True(t, llm.IsConfigurationError(err))
	assert.EqualValues(t, 0, calls.Load(), "no network attempt without credentials")
}

func TestGenerateContent_EmptyAnswerIsShapeError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL, "test-key").GenerateContent(context.Background(), userContents("hi"))
	require.Error(t, err)
	assert.True(t, llm.IsResponseShapeError(err))
	assert.EqualValues(t, 1, calls.Load())
}

func TestGenerateContent_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newClient(t, srv.URL, "test-key").GenerateContent(ctx, userContents("hi"))
	require.Error(t, err)
	assert.True(t, llm.IsTimeoutError(err))
}
