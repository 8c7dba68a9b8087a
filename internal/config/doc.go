// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. Validation rejects a
// configuration in which any of the required environment-backed values
// (DATABASE_URL, SECRET_KEY, API_KEY, REDIS_URL) is absent or empty;
// the service must not start in that case.
package config
