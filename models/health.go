package models

// HealthStatus is the response payload of the health check endpoint,
// consumed by load balancers and monitoring.
type HealthStatus struct {
	// Status is "healthy" whenever the process is able to answer at all.
	Status string `json:"status"`

	// Timestamp is the UTC time the check ran, RFC 3339.
	Timestamp string `json:"timestamp"`

	// Uptime is the number of seconds since process boot. Never negative.
	Uptime float64 `json:"uptime"`

	// Version is the advertised application version.
	Version string `json:"version"`

	// Checks reports the state of each (simulated) dependency.
	Checks HealthChecks `json:"checks"`
}

// HealthChecks holds the per-dependency health verdicts. The backing
// stores are simulations, so the checks reflect their recorded
// connection state rather than a live probe.
type HealthChecks struct {
	Database  string `json:"database"`
	Cache     string `json:"cache"`
	DiskSpace string `json:"disk_space"`
}
