// Package domain holds the quoting model: insurers, plans, requests, quotes
// and the pricing rules that connect them. Errors here describe business
// failures; adapters decide how they surface.
package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrUnavailable   = errors.New("unavailable")
	ErrInvalidRecord = errors.New("invalid record")
	ErrNoBaseRates   = errors.New("plan has no base rates")
)

// ValidationError names the offending field. Field is empty when the
// failure is not tied to one.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid request: " + e.Message
	}

	return "invalid " + e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError reports a rule violation on field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// invalidValue also records the rejected value for logs.
func invalidValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// UnavailableError means a dependency such as the document store could not
// serve the call.
type UnavailableError struct {
	Service string
	Reason  string
}

func (e *UnavailableError) Error() string {
	if e.Reason == "" {
		return e.Service + " unavailable"
	}

	return e.Service + " unavailable: " + e.Reason
}

func (e *UnavailableError) Unwrap() error { return ErrUnavailable }

// NewUnavailableError reports that service failed for reason.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// RecordError is a stored document that does not decode into a valid
// insurer or plan.
type RecordError struct {
	Collection string
	ID         string
	Reason     string
}

func (e *RecordError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("bad %s record: %s", e.Collection, e.Reason)
	}

	return fmt.Sprintf("bad %s record %s: %s", e.Collection, e.ID, e.Reason)
}

func (e *RecordError) Unwrap() error { return ErrInvalidRecord }

// NewRecordError reports a bad document in collection.
func NewRecordError(collection, id, reason string) error {
	return &RecordError{Collection: collection, ID: id, Reason: reason}
}

func IsValidation(err error) bool    { return errors.Is(err, ErrValidation) }
func IsUnavailable(err error) bool   { return errors.Is(err, ErrUnavailable) }
func IsInvalidRecord(err error) bool { return errors.Is(err, ErrInvalidRecord) }
