// Package gemini implements the upstream client for the Gemini
// generateContent API, with bounded retries and exponential backoff on
// transient failures.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/claubot/clau/pkg/llm"
	"go.uber.org/zap"
)

// Client calls the Gemini generateContent endpoint.
type Client struct {
	apiKey     string
	httpClient *http.Client
	cfg        Config
	logger     *zap.Logger
}

// New creates a Gemini client. An empty apiKey is allowed so the server can
// boot unconfigured; every generation call then fails with a configuration
// error before any network I/O.
func New(cfg Config, apiKey string, logger *zap.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		// Attempt deadlines come from per-attempt contexts, not the
		// transport, so a retry gets a fresh timeout budget.
		httpClient: &http.Client{},
		cfg:        cfg.withDefaults(),
		logger:     logger,
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.cfg.Model
}

// GenerateContent sends the conversation to Gemini and returns the generated
// text. Transient failures (429, 5xx transient statuses, timeouts) are
// retried up to MaxAttempts with exponential backoff; any other non-200
// fails immediately. The backoff sleep selects on ctx so client disconnects
// cancel pending retries.
func (c *Client) GenerateContent(ctx context.Context, contents []llm.Content) (*llm.Result, error) {
	if c.apiKey == "" {
		return nil, llm.NewProviderError(llm.ErrCodeConfiguration, "gemini: api key not set", nil)
	}

	body, err := json.Marshal(generateRequest{Contents: contents})
	if err != nil {
		return nil, fmt.Errorf("marshal generate request: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		text, err := c.attempt(ctx, body)
		if err == nil {
			if attempt > 1 {
				c.logger.Info("upstream recovered after retries",
					zap.Int("retries", attempt-1),
					zap.String("model", c.cfg.Model),
				)
			}
			return &llm.Result{Text: text, Retries: attempt - 1, Model: c.cfg.Model}, nil
		}

		if !llm.IsRetryable(err) {
			return nil, err
		}
		lastErr = err

		if attempt == c.cfg.MaxAttempts {
			break
		}

		delay := c.cfg.BaseDelay * time.Duration(1<<(attempt-1))
		c.logger.Warn("transient upstream failure, backing off",
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return nil, mapError(ctx.Err())
		case <-time.After(delay):
		}
	}

	c.logger.Error("upstream retries exhausted",
		zap.Int("attempts", c.cfg.MaxAttempts),
		zap.Error(lastErr),
	)
	return nil, lastErr
}

// attempt performs a single generateContent call under its own deadline.
func (c *Client) attempt(ctx context.Context, body []byte) (string, error) {
	actx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.cfg.BaseURL, url.PathEscape(c.cfg.Model), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(actx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", mapError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		return "", mapError(&geminiStatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(data)),
		})
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", llm.NewProviderError(llm.ErrCodeResponseShape, "decode generate response", err)
	}

	text := gr.text()
	if text == "" {
		return "", llm.NewProviderError(llm.ErrCodeResponseShape, "upstream returned no answer text", nil)
	}
	return text, nil
}

// --- Gemini generateContent API types (internal) ---

type generateRequest struct {
	Contents []llm.Content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// text joins the text parts of the first candidate.
func (r *generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}
