package models

// ServiceInfo is the response payload of the root endpoint: static
// service metadata plus the current timestamp.
type ServiceInfo struct {
	// Service is the public service name.
	Service string `json:"service"`

	// Version is the advertised application version.
	Version string `json:"version"`

	// Endpoints maps logical endpoint names to their paths.
	Endpoints map[string]string `json:"endpoints"`

	// Documentation is the URL of the API documentation.
	Documentation string `json:"documentation"`

	// Timestamp is the UTC time the response was produced, RFC 3339.
	Timestamp string `json:"timestamp"`
}
