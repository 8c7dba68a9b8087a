package config

import "strings"

// MissingConfigError is returned by validation when one or more required
// environment variables are absent or empty. Missing preserves the
// declaration order of the required set, so callers can report exactly
// which variables the operator has to provide.
type MissingConfigError struct {
	Missing []string
}

func (e *MissingConfigError) Error() string {
	return "missing required environment variables: " + strings.Join(e.Missing, ", ")
}
