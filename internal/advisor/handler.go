// Package advisor implements the financial-advisory question endpoint: it
// injects the system prompt into the conversation, calls the upstream
// generation client, and post-processes the returned markdown before
// answering.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/claubot/clau/internal/markdown"
	"github.com/claubot/clau/internal/server"
	"github.com/claubot/clau/pkg/llm"
	"go.uber.org/zap"
)

// Generator produces text from a conversation history. Implemented by the
// gemini client; defined here (consumer-side) so tests can substitute a fake.
type Generator interface {
	GenerateContent(ctx context.Context, contents []llm.Content) (*llm.Result, error)
}

// AskRequest is the request body for POST /ask.
// @Description Conversation history in generateContent shape.
type AskRequest struct {
	Contents []llm.Content `json:"contents"`
}

// Meta is the per-response metadata record. Created fresh per request and
// never stored.
type Meta struct {
	Category       Category `json:"category" example:"personal_finance"`
	HasDisclaimer  bool     `json:"has_disclaimer"`
	Retries        int      `json:"retries"`
	Model          string   `json:"model" example:"gemini-2.5-flash"`
	ResponseLength int      `json:"response_length"`
	TimestampUTC   string   `json:"timestamp_utc" example:"2026-08-27T10:30:00Z"`
}

// AskResponse is the success body for POST /ask.
type AskResponse struct {
	Answer string `json:"answer"`
	Meta   Meta   `json:"meta"`
}

// Handler serves the advisor endpoints.
type Handler struct {
	gen       Generator
	wrapWidth int
	logger    *zap.Logger
}

// NewHandler creates an advisor Handler. wrapWidth <= 0 selects the default
// soft-wrap width.
func NewHandler(gen Generator, wrapWidth int, logger *zap.Logger) *Handler {
	if wrapWidth <= 0 {
		wrapWidth = markdown.DefaultWrapWidth
	}
	return &Handler{gen: gen, wrapWidth: wrapWidth, logger: logger}
}

// RegisterRoutes registers advisor routes on the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /ask", h.handleAsk)
}

// handleAsk answers one financial question.
//
//	@Summary		Ask the advisor
//	@Description	Sends a conversation to the model and returns the post-processed answer with metadata.
//	@Tags			advisor
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AskRequest	true	"Conversation history"
//	@Success		200		{object}	AskResponse
//	@Failure		400		{object}	server.Problem	"Empty contents"
//	@Failure		422		{object}	server.Problem	"Malformed request schema"
//	@Failure		500		{object}	server.Problem	"Missing configuration"
//	@Failure		502		{object}	server.Problem	"Upstream failure after retries"
//	@Failure		504		{object}	server.Problem	"Upstream timeout after retries"
//	@Router			/ask [post]
func (h *Handler) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.UnprocessableEntity(w, "invalid request body: "+err.Error(), r.URL.Path)
		return
	}
	if req.Contents == nil {
		server.UnprocessableEntity(w, "contents is required", r.URL.Path)
		return
	}
	if len(req.Contents) == 0 {
		server.BadRequest(w, "contents must not be empty", r.URL.Path)
		return
	}
	for i, c := range req.Contents {
		if !llm.ValidRole(c.Role) {
			server.UnprocessableEntity(w,
				fmt.Sprintf("contents[%d].role must be %q or %q", i, llm.RoleUser, llm.RoleModel),
				r.URL.Path)
			return
		}
	}

	// Classification runs on the original question, before prompt injection.
	question := FirstUserText(req.Contents)

	res, err := h.gen.GenerateContent(r.Context(), InjectPrompt(req.Contents))
	if err != nil {
		h.writeGenerateError(w, r, err)
		return
	}

	answer := markdown.RepairTables(res.Text)
	answer = markdown.StripCellBold(answer)
	answer = markdown.Wrap(answer, h.wrapWidth)
	answer, hasDisclaimer := EnsureDisclaimer(answer)

	category := Classify(question)
	questionsTotal.WithLabelValues(string(category)).Inc()
	if res.Retries > 0 {
		upstreamRetriesTotal.Add(float64(res.Retries))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(AskResponse{
		Answer: answer,
		Meta: Meta{
			Category:       category,
			HasDisclaimer:  hasDisclaimer,
			Retries:        res.Retries,
			Model:          res.Model,
			ResponseLength: len(answer),
			TimestampUTC:   time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// writeGenerateError maps upstream failures onto the HTTP error surface:
// 500 for missing configuration, 504 for timeouts, 502 for everything the
// upstream could not answer. Details are logged server-side; the caller only
// sees the problem response.
func (h *Handler) writeGenerateError(w http.ResponseWriter, r *http.Request, err error) {
	code := "internal"
	var pe *llm.ProviderError
	if errors.As(err, &pe) {
		code = pe.Code
	}
	upstreamFailuresTotal.WithLabelValues(code).Inc()

	h.logger.Error("generation failed",
		zap.String("code", code),
		zap.String("request_id", server.RequestID(r.Context())),
		zap.Error(err),
	)

	switch {
	case llm.IsConfigurationError(err):
		server.InternalError(w, "Gemini API key not set", r.URL.Path)
	case llm.IsTimeoutError(err):
		server.GatewayTimeout(w, "upstream request timed out after retries", r.URL.Path)
	case llm.IsRetryable(err):
		server.BadGateway(w, "upstream unavailable after retries", r.URL.Path)
	case llm.IsUpstreamError(err) || llm.IsResponseShapeError(err):
		server.BadGateway(w, pe.Message, r.URL.Path)
	default:
		server.InternalError(w, "unexpected error while generating answer", r.URL.Path)
	}
}
