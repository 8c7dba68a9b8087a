package models

// ErrorResponse is the uniform JSON envelope used for every error the
// API returns, regardless of whether the fault originated in a handler,
// the router, or a recovered panic.
type ErrorResponse struct {
	// Error is the short error name (e.g. "Not Found",
	// "API key required").
	Error string `json:"error"`

	// Message is an optional human-readable description.
	Message string `json:"message,omitempty"`

	// Code is the HTTP status code, included for router-level faults.
	Code int `json:"code,omitempty"`
}
