// Package dto holds the JSON shapes of the quote API and the error envelope
// every failing endpoint returns.
package dto

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/trace"
)

// Machine-readable error codes.
const (
	ErrorCodeValidation    = "VALIDATION_ERROR"
	ErrorCodeBadRequest    = "BAD_REQUEST"
	ErrorCodeNotFound      = "NOT_FOUND"
	ErrorCodeUnavailable   = "SERVICE_UNAVAILABLE"
	ErrorCodeTimeout       = "TIMEOUT"
	ErrorCodeDataIntegrity = "DATA_INTEGRITY"
	ErrorCodeInternal      = "INTERNAL_ERROR"
)

var statusByCode = map[string]int{
	ErrorCodeValidation:  http.StatusBadRequest,
	ErrorCodeBadRequest:  http.StatusBadRequest,
	ErrorCodeNotFound:    http.StatusNotFound,
	ErrorCodeUnavailable: http.StatusServiceUnavailable,
	ErrorCodeTimeout:     http.StatusGatewayTimeout,
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail carries the code, a message for humans, and per-field details
// when the request body was rejected.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// NewErrorResponse builds an envelope without field details.
func NewErrorResponse(code, message string) *ErrorResponse {
	return NewErrorResponseWithDetails(code, message, nil)
}

// NewErrorResponseWithDetails builds an envelope with field details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	return &ErrorResponse{Error: ErrorDetail{Code: code, Message: message, Details: details}}
}

// WithTraceID stamps the envelope with a trace id.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// TraceID returns the trace id of the span in ctx, or "".
func TraceID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return ""
	}

	return sc.TraceID().String()
}

// HTTPStatusFromCode returns the status for an error code. Unknown codes
// are 500.
func HTTPStatusFromCode(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}

	return http.StatusInternalServerError
}
