package server_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/claubot/clau/internal/advisor"
	"github.com/claubot/clau/internal/llm/gemini"
	"github.com/claubot/clau/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(ready server.ReadinessChecker, routes ...server.RouteRegistrar) http.Handler {
	return server.New("127.0.0.1:0", zap.NewNop(), ready, false, routes...).Handler()
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	return w
}

func TestRootStatusBanner(t *testing.T) {
	w := get(newTestServer(nil), "/")

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Contains(t, strings.ToLower(resp.Message), "running")

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.NotEmpty(t, w.Header().Get("X-Clau-Version"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealthz(t *testing.T) {
	w := get(newTestServer(nil), "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReadyzNotReady(t *testing.T) {
	notReady := func(ctx context.Context) error { return fmt.Errorf("gemini api key not configured") }
	w := get(newTestServer(notReady), "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestUnknownRouteIs404(t *testing.T) {
	w := get(newTestServer(nil), "/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPreflightRequest(t *testing.T) {
	h := newTestServer(nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/ask", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

// TestEndToEndAsk drives the full stack: HTTP server, advisor handler,
// gemini client, and a mocked upstream.
func TestEndToEndAsk(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Contains(t, r.URL.Path, ":generateContent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Budget 50/30/20 rule\n\n**Final Recommendation: Save 20% of income**"}]}}]}`))
	}))
	defer upstream.Close()

	client := gemini.New(gemini.Config{
		BaseURL:   upstream.URL,
		Timeout:   2 * time.Second,
		BaseDelay: time.Millisecond,
	}, "test-key", zap.NewNop())
	handler := advisor.NewHandler(client, 0, zap.NewNop())

	h := newTestServer(nil, handler)

	body := `{"contents":[{"role":"user","parts":[{"text":"How should I budget?"}]}]}`
	req := httptest.NewRequest("POST", "/ask", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp advisor.AskResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Contains(t, resp.Answer, "Final Recommendation")
	assert.Equal(t, advisor.CategoryPersonalFinance, resp.Meta.Category)
	assert.Equal(t, 0, resp.Meta.Retries)
}
