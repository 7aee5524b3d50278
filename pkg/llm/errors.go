package llm

import "errors"

// Error code constants for standardized error handling around the upstream
// provider. The client maps raw HTTP/network failures to one of these codes.
const (
	ErrCodeConfiguration = "configuration_error"  // Missing credentials; never retried.
	ErrCodeRateLimit     = "rate_limit_exceeded"  // 429; transient.
	ErrCodeServerError   = "server_error"         // 5xx or unreachable; transient.
	ErrCodeTimeout       = "timeout"              // Attempt deadline exceeded; transient.
	ErrCodeUpstream      = "upstream_error"       // Other non-200; permanent, no retry.
	ErrCodeResponseShape = "response_shape_error" // 200 with missing/empty answer.
)

// ProviderError represents a typed error from the upstream provider.
// Use the IsXxx helpers below to classify errors without inspecting fields.
type ProviderError struct {
	Code       string // One of the ErrCode* constants.
	Message    string // Human-readable description.
	StatusCode int    // Upstream HTTP status, 0 when not applicable.
	Err        error  // Underlying error (may be nil).
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a typed provider error.
func NewProviderError(code, message string, err error) *ProviderError {
	return &ProviderError{Code: code, Message: message, Err: err}
}

// IsConfigurationError reports whether err is a missing-credentials failure.
func IsConfigurationError(err error) bool {
	return hasCode(err, ErrCodeConfiguration)
}

// IsRateLimitError reports whether err is a rate-limit error.
func IsRateLimitError(err error) bool {
	return hasCode(err, ErrCodeRateLimit)
}

// IsServerError reports whether err is a provider-side server error.
func IsServerError(err error) bool {
	return hasCode(err, ErrCodeServerError)
}

// IsTimeoutError reports whether err is a timeout.
func IsTimeoutError(err error) bool {
	return hasCode(err, ErrCodeTimeout)
}

// IsUpstreamError reports whether err is a permanent upstream rejection.
func IsUpstreamError(err error) bool {
	return hasCode(err, ErrCodeUpstream)
}

// IsResponseShapeError reports whether err is an unexpected-response failure.
func IsResponseShapeError(err error) bool {
	return hasCode(err, ErrCodeResponseShape)
}

// IsRetryable reports whether the error is transient and the call may
// succeed on retry.
func IsRetryable(err error) bool {
	return IsRateLimitError(err) || IsServerError(err) || IsTimeoutError(err)
}

func hasCode(err error, code string) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.Code == code
}
