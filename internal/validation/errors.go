package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies a validation failure so tests and machine clients can
// assert on the kind of problem without parsing messages.
type Code string

const (
	CodeRequired      Code = "required"
	CodeWrongType     Code = "wrong_type"
	CodeOutOfRange    Code = "out_of_range"
	CodeInvalidFormat Code = "invalid_format"
	CodeInvalidValue  Code = "invalid_value"
	CodeNotPositive   Code = "not_positive"
	CodeInFuture      Code = "in_future"
	CodeTooLong       Code = "too_long"
	CodeNotFound      Code = "reference_not_found"
	CodeInvalidRole   Code = "invalid_role"
	CodeDuplicate     Code = "duplicate"
	CodeLookupFailed  Code = "lookup_failed"
)

// FieldError is a single validation failure tied to an input field.
type FieldError struct {
	Field   string `json:"field"`
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func fieldErr(field string, code Code, message string) FieldError {
	return FieldError{Field: field, Code: code, Message: message}
}

// Result aggregates the outcome of one validation call. Valid is true
// exactly when Errors is empty; an invalid Result is still a successful
// call, it just reports problems with the data.
type Result struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

func resultFrom(errs []FieldError) *Result {
	return &Result{Valid: len(errs) == 0, Errors: errs}
}

// Messages returns the human-readable error strings in field order. This
// is the shape the external boundary reports.
func (r *Result) Messages() []string {
	if len(r.Errors) == 0 {
		return nil
	}
	out := make([]string, len(r.Errors))
	for i, fe := range r.Errors {
		out[i] = fe.Message
	}
	return out
}

// Err adapts the result for write paths, which reject invalid input
// instead of reporting it. Returns nil when the result is valid.
func (r *Result) Err() error {
	if r.Valid {
		return nil
	}
	return &ValidationError{Result: r}
}

// ValidationError carries an invalid Result across the service boundary.
// Its message is the joined string form the original API exposed.
type ValidationError struct {
	Result *Result
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Result.Messages(), ", ")
}

// RequestError reports a malformed validation request: missing envelope
// fields, an unknown collection, data that is not an object. The call
// itself cannot be completed, as opposed to a completed call that found
// the data invalid.
type RequestError struct {
	Reason string
}

func (e *RequestError) Error() string { return e.Reason }

func badRequestf(format string, args ...any) *RequestError {
	return &RequestError{Reason: fmt.Sprintf(format, args...)}
}

// ErrUnauthenticated reports a call that reached the entry point without
// an authenticated caller in its context.
var ErrUnauthenticated = errors.New("caller identity missing")
