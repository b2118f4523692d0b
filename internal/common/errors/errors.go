// Package errors provides standardized error handling for the HTTP service.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodePayloadMalformed ErrorCode = "PAYLOAD_MALFORMED"

	ErrCodeUpstreamUnreachable  ErrorCode = "UPSTREAM_UNREACHABLE"
	ErrCodeUpstreamTimeout      ErrorCode = "UPSTREAM_TIMEOUT"
	ErrCodeUpstreamBadStatus    ErrorCode = "UPSTREAM_BAD_STATUS"
	ErrCodeUpstreamDecodeFailed ErrorCode = "UPSTREAM_DECODE_FAILED"

	ErrCodeResponseEncodeFailed ErrorCode = "RESPONSE_ENCODE_FAILED"
	ErrCodeInternal             ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
	cause     error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// HTTPStatus maps an error code to the status returned to the caller.
// Validation problems are the caller's fault; upstream problems are reported
// as a bad gateway; everything else is an internal error.
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeValidationFailed, ErrCodePayloadMalformed:
		return http.StatusBadRequest
	case ErrCodeUpstreamUnreachable, ErrCodeUpstreamTimeout,
		ErrCodeUpstreamBadStatus, ErrCodeUpstreamDecodeFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a non-retryable client error for payloads that
// violate the length constraints.
func NewValidationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Payload failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMalformedPayloadError creates a non-retryable client error for request
// bodies that cannot be decoded at all.
func NewMalformedPayloadError(cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodePayloadMalformed,
		Message:   "Request body is not a valid payload",
		Details:   cause.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// NewUpstreamUnreachableError wraps a failed outbound call.
func NewUpstreamUnreachableError(cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamUnreachable,
		Message:   "Echo service is unreachable",
		Details:   cause.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// NewUpstreamTimeoutError wraps an outbound call that exceeded its deadline.
func NewUpstreamTimeoutError(cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamTimeout,
		Message:   "Echo service call timed out",
		Details:   cause.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// NewUpstreamBadStatusError reports a non-success status from the echo service.
func NewUpstreamBadStatusError(status int) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamBadStatus,
		Message:   "Echo service returned a non-success status",
		Details:   fmt.Sprintf("status %d", status),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamDecodeError reports an echo response body that is not a valid
// envelope. Terminal unless the configured single re-issue is enabled.
func NewUpstreamDecodeError(cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamDecodeFailed,
		Message:   "Echo service response could not be decoded",
		Details:   cause.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// NewEncodeError reports a result that could not be rendered as JSON.
func NewEncodeError(cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeResponseEncodeFailed,
		Message:   "Response could not be serialized",
		Details:   cause.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}
