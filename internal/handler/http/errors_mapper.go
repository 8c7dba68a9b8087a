package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/models"
)

var errorStatusMap = map[error]int{
	service.ErrMissingField: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// handleServiceError converts a service-layer error into the uniform
// envelope. Mapped errors keep their own message as the error name (the
// wire contract predates the envelope's message field); anything
// unmapped is reported as an opaque 500.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Error().Err(err).Msg("unhandled service error")
		writeError(w, r, status, models.ErrorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
		})
		return
	}

	writeError(w, r, status, models.ErrorResponse{
		Error: err.Error(),
	})
}

// notFound is the router-level fallback for unknown paths. Framework
// faults use the full envelope: name, description, and status code.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, models.ErrorResponse{
		Error:   http.StatusText(http.StatusNotFound),
		Message: "The requested URL was not found on the server.",
		Code:    http.StatusNotFound,
	})
}

// methodNotAllowed is the router-level fallback for known paths hit
// with an unsupported method.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, models.ErrorResponse{
		Error:   http.StatusText(http.StatusMethodNotAllowed),
		Message: "The method is not allowed for the requested URL.",
		Code:    http.StatusMethodNotAllowed,
	})
}
