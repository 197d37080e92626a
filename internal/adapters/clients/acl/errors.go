// Package acl translates the lifequote HTTP API back into domain types so
// the CLI can quote against a remote service exactly as it does locally.
package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/jsamuelsen/lifequote/internal/adapters/clients"
	"github.com/jsamuelsen/lifequote/internal/domain"
)

// errorEnvelope mirrors the API error body.
type errorEnvelope struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	TraceID string `json:"traceId"`
}

// MapTransportError converts a client failure into a domain error.
func MapTransportError(err error, service, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(service, "circuit breaker open during "+operation)
	case errors.Is(err, clients.ErrRetriesExhausted):
		return domain.NewUnavailableError(service, fmt.Sprintf("%s: %v", operation, err))
	default:
		return domain.NewUnavailableError(service, fmt.Sprintf("%s failed: %v", operation, err))
	}
}

// MapHTTPError converts a non-2xx response into a domain error. The first
// field detail, in name order, becomes the ValidationError field.
func MapHTTPError(status int, body io.Reader, service, operation string) error {
	var env errorEnvelope
	if body != nil {
		_ = json.NewDecoder(body).Decode(&env)
	}

	message := env.Error.Message
	if message == "" {
		message = fmt.Sprintf("%s failed with status %d", operation, status)
	}

	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		if field, detail, ok := firstDetail(env.Error.Details); ok {
			return domain.NewValidationError(field, detail)
		}

		return domain.NewValidationError("", message)

	case status >= http.StatusInternalServerError || status == http.StatusTooManyRequests:
		return domain.NewUnavailableError(service, message)

	default:
		return fmt.Errorf("%s: unexpected status %d: %s", operation, status, message)
	}
}

func firstDetail(details map[string]string) (field, message string, ok bool) {
	if len(details) == 0 {
		return "", "", false
	}

	fields := make([]string, 0, len(details))
	for f := range details {
		fields = append(fields, f)
	}

	sort.Strings(fields)

	return fields[0], details[fields[0]], true
}
