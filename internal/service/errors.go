package service

import "errors"

// ErrMissingField is the base error every *MissingFieldError unwraps
// to. Callers match it with [errors.Is] when the concrete field name is
// irrelevant (e.g. for HTTP status mapping).
var ErrMissingField = errors.New("missing required field")

// MissingFieldError reports the first required order field absent from
// a creation request. Its message is the client-facing description.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "Missing field: " + e.Field
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}
