package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/models"
)

// writeJSON serializes payload into the response with the given status.
// Encoding failures cannot be surfaced to the client any more (the
// header is already written), so they are only logged.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error encoding response")
	}
}

// writeError writes the uniform error envelope. Empty Message and zero
// Code are omitted from the body, so a bare gate rejection serializes
// to exactly {"error": "..."}.
func writeError(w http.ResponseWriter, r *http.Request, status int, envelope models.ErrorResponse) {
	writeJSON(w, r, status, envelope)
}
