// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/models"
)

// apiKeyHeader is the header clients must send on protected routes.
const apiKeyHeader = "X-API-Key"

// msgAPIKeyRequired is the exact client-facing rejection body of the
// gate; deployed clients match on it.
const msgAPIKeyRequired = "API key required"

// requireAPIKey gates a route on the presence of the X-API-Key header.
//
// An absent header short-circuits the route with HTTP 401 and the exact
// body {"error": "API key required"}; the underlying handler is never
// invoked. Any non-empty value passes: the key is NOT verified against
// a known credential. Presence-only checking is the documented contract
// of this API and must not be tightened without a coordinated client
// rollout.
func (h *Handler) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		log.Info().Msg("validating API key")

		if r.Header.Get(apiKeyHeader) == "" {
			log.Warn().Msg("API key missing in request")
			writeError(w, r, http.StatusUnauthorized, models.ErrorResponse{
				Error: msgAPIKeyRequired,
			})
			return
		}

		log.Info().Msg("API key validated")
		next.ServeHTTP(w, r)
	})
}
