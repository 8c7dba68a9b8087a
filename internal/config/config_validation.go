// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// requiredVars maps each required environment variable name to an
// accessor for its merged value. The names are part of the deployment
// contract and must match the process environment exactly.
var requiredVars = []struct {
	name  string
	value func(cfg *StructuredConfig) string
}{
	{"DATABASE_URL", func(cfg *StructuredConfig) string { return cfg.Storage.DB.DSN }},
	{"SECRET_KEY", func(cfg *StructuredConfig) string { return cfg.App.SecretKey }},
	{"API_KEY", func(cfg *StructuredConfig) string { return cfg.App.APIKey }},
	{"REDIS_URL", func(cfg *StructuredConfig) string { return cfg.Storage.Cache.URL }},
}

// validate checks that the final merged [StructuredConfig] satisfies the
// startup invariant: every required variable is present and non-empty.
//
// On failure it returns a *MissingConfigError carrying the exact set of
// absent names. The service must treat this error as fatal and refuse to
// start; configuration is read once and never retried.
func (cfg *StructuredConfig) validate() error {
	var missing []string
	for _, v := range requiredVars {
		if v.value(cfg) == "" {
			missing = append(missing, v.name)
		}
	}

	if len(missing) > 0 {
		return &MissingConfigError{Missing: missing}
	}

	return nil
}
