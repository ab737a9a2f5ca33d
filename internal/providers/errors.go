package providers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind categorizes why a responder request failed. It drives the
// adapter-level retry decision and shows up in logs.
type ErrorKind string

const (
	// ErrRateLimit indicates rate limiting (HTTP 429)
	ErrRateLimit ErrorKind = "rate_limit"

	// ErrAuth indicates authentication failure (HTTP 401, 403)
	ErrAuth ErrorKind = "auth"

	// ErrTimeout indicates request timeout
	ErrTimeout ErrorKind = "timeout"

	// ErrServer indicates server-side issues (HTTP 5xx)
	ErrServer ErrorKind = "server_error"

	// ErrInvalidRequest indicates client-side issues (HTTP 400)
	ErrInvalidRequest ErrorKind = "invalid_request"

	// ErrModelUnavailable indicates the model is not available
	ErrModelUnavailable ErrorKind = "model_unavailable"

	// ErrUnknown indicates an unclassified error
	ErrUnknown ErrorKind = "unknown"
)

// Retryable returns true if the kind suggests retrying may succeed.
func (k ErrorKind) Retryable() bool {
	switch k {
	case ErrRateLimit, ErrTimeout, ErrServer:
		return true
	default:
		return false
	}
}

// ProviderError is a structured transport error from a responder backend.
// It captures the context needed for retry decisions and debugging.
type ProviderError struct {
	// Kind categorizes the error for retry logic
	Kind ErrorKind

	// Provider is the name of the backend (e.g., "anthropic", "openai")
	Provider string

	// Model is the model that was requested
	Model string

	// Status is the HTTP status code, if applicable
	Status int

	// Code is the provider-specific error code
	Code string

	// Message is the human-readable error message
	Message string

	// RequestID is the provider's request ID for debugging
	RequestID string

	// Cause is the underlying error
	Cause error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("[%s]", e.Kind))

	if e.Provider != "" {
		parts = append(parts, e.Provider)
	}
	if e.Model != "" {
		parts = append(parts, fmt.Sprintf("model=%s", e.Model))
	}
	if e.Status != 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.Status))
	}
	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("code=%s", e.Code))
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	} else if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}

	return strings.Join(parts, " ")
}

// Unwrap returns the underlying error.
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// NewProviderError creates a ProviderError classified from its cause.
func NewProviderError(provider, model string, cause error) *ProviderError {
	err := &ProviderError{
		Provider: provider,
		Model:    model,
		Cause:    cause,
		Kind:     ErrUnknown,
	}

	if cause != nil {
		err.Message = cause.Error()
		err.Kind = ClassifyError(cause)
	}

	return err
}

// WithStatus adds HTTP status to the error and reclassifies.
func (e *ProviderError) WithStatus(status int) *ProviderError {
	e.Status = status
	e.Kind = classifyStatus(status)
	return e
}

// WithCode adds a provider-specific error code.
func (e *ProviderError) WithCode(code string) *ProviderError {
	e.Code = code
	if kind := classifyCode(code); kind != ErrUnknown {
		e.Kind = kind
	}
	return e
}

// WithRequestID adds the provider's request ID.
func (e *ProviderError) WithRequestID(id string) *ProviderError {
	e.RequestID = id
	return e
}

// WithMessage sets the error message.
func (e *ProviderError) WithMessage(msg string) *ProviderError {
	e.Message = msg
	return e
}

// ClassifyError inspects an error and returns the appropriate ErrorKind.
func ClassifyError(err error) ErrorKind {
	if err == nil {
		return ErrUnknown
	}

	errStr := strings.ToLower(err.Error())

	if strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded") ||
		strings.Contains(errStr, "context deadline") {
		return ErrTimeout
	}

	if strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "rate_limit") ||
		strings.Contains(errStr, "too many requests") ||
		strings.Contains(errStr, "resource exhausted") ||
		strings.Contains(errStr, "429") {
		return ErrRateLimit
	}

	if strings.Contains(errStr, "unauthorized") ||
		strings.Contains(errStr, "invalid api key") ||
		strings.Contains(errStr, "invalid_api_key") ||
		strings.Contains(errStr, "authentication") ||
		strings.Contains(errStr, "401") ||
		strings.Contains(errStr, "403") {
		return ErrAuth
	}

	if strings.Contains(errStr, "model not found") ||
		strings.Contains(errStr, "model_not_found") ||
		strings.Contains(errStr, "does not exist") ||
		strings.Contains(errStr, "unavailable") {
		return ErrModelUnavailable
	}

	if strings.Contains(errStr, "internal server") ||
		strings.Contains(errStr, "server error") ||
		strings.Contains(errStr, "bad gateway") ||
		strings.Contains(errStr, "500") ||
		strings.Contains(errStr, "502") ||
		strings.Contains(errStr, "503") ||
		strings.Contains(errStr, "504") {
		return ErrServer
	}

	return ErrUnknown
}

// classifyStatus returns an ErrorKind based on HTTP status code.
func classifyStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrAuth
	case status == http.StatusTooManyRequests:
		return ErrRateLimit
	case status == http.StatusBadRequest:
		return ErrInvalidRequest
	case status == http.StatusNotFound:
		return ErrModelUnavailable
	case status >= 500:
		return ErrServer
	default:
		return ErrUnknown
	}
}

// classifyCode returns an ErrorKind based on provider-specific error codes.
func classifyCode(code string) ErrorKind {
	switch strings.ToLower(code) {
	case "rate_limit_error", "rate_limit_exceeded":
		return ErrRateLimit
	case "authentication_error", "invalid_api_key", "permission_error":
		return ErrAuth
	case "not_found_error", "model_not_found":
		return ErrModelUnavailable
	case "api_error", "overloaded_error", "server_error", "internal_error":
		return ErrServer
	case "invalid_request_error":
		return ErrInvalidRequest
	default:
		return ErrUnknown
	}
}

// GetProviderError extracts a ProviderError from an error chain.
func GetProviderError(err error) (*ProviderError, bool) {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr, true
	}
	return nil, false
}

// IsRetryable checks if an error should be retried.
func IsRetryable(err error) bool {
	if providerErr, ok := GetProviderError(err); ok {
		return providerErr.Kind.Retryable()
	}
	return ClassifyError(err).Retryable()
}
