package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/models"
)

// msgContentTypeRequired is the exact client-facing rejection body for
// non-JSON order submissions; deployed clients match on it.
const msgContentTypeRequired = "Content-Type must be application/json"

// createOrder accepts a JSON order request and responds 201 with a
// synthetic order record. Failure modes, in check order: missing JSON
// content type (400, exact message), undecodable body (400), missing
// required field (400, names the first absent field).
func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if !isJSONRequest(r) {
		log.Error().Str("content_type", r.Header.Get("Content-Type")).Msg("request is not JSON")
		writeError(w, r, http.StatusBadRequest, models.ErrorResponse{
			Error: msgContentTypeRequired,
		})
		return
	}

	var orderRequest models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&orderRequest); err != nil {
		log.Error().Err(err).Msg("invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, models.ErrorResponse{
			Error:   http.StatusText(http.StatusBadRequest),
			Message: "request body is not valid JSON",
			Code:    http.StatusBadRequest,
		})
		return
	}

	order, err := h.services.OrderService.CreateOrder(r.Context(), orderRequest)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, order)
}
