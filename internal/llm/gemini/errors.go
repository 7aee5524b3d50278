package gemini

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/claubot/clau/pkg/llm"
)

// geminiStatusError represents a non-200 HTTP response from the Gemini API.
type geminiStatusError struct {
	StatusCode int
	Body       string
}

func (e *geminiStatusError) Error() string {
	return fmt.Sprintf("gemini: status %d: %s", e.StatusCode, e.Body)
}

// transientStatus reports whether code indicates a temporary upstream
// condition that is safe to retry.
func transientStatus(code int) bool {
	switch code {
	case 429, 500, 502, 503, 504:
		return true
	}
	return false
}

// mapError translates Gemini and network errors into typed llm.ProviderError
// values. Transient statuses and timeouts map to retryable codes; any other
// non-200 maps to a permanent upstream error carrying the original status
// and body.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &llm.ProviderError{
			Code:    llm.ErrCodeTimeout,
			Message: "gemini request timed out or cancelled",
			Err:     err,
		}
	}

	var se *geminiStatusError
	if errors.As(err, &se) {
		switch {
		case se.StatusCode == 429:
			return &llm.ProviderError{
				Code:       llm.ErrCodeRateLimit,
				Message:    "gemini rate limited",
				StatusCode: se.StatusCode,
				Err:        err,
			}
		case transientStatus(se.StatusCode):
			return &llm.ProviderError{
				Code:       llm.ErrCodeServerError,
				Message:    fmt.Sprintf("gemini server error (status %d)", se.StatusCode),
				StatusCode: se.StatusCode,
				Err:        err,
			}
		default:
			return &llm.ProviderError{
				Code:       llm.ErrCodeUpstream,
				Message:    fmt.Sprintf("gemini rejected request (status %d): %s", se.StatusCode, se.Body),
				StatusCode: se.StatusCode,
				Err:        err,
			}
		}
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &llm.ProviderError{Code: llm.ErrCodeTimeout, Message: "gemini request timed out", Err: err}
	}

	return &llm.ProviderError{Code: llm.ErrCodeServerError, Message: "gemini unreachable", Err: err}
}
