package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/models"
)

// withRecovery converts any panic escaping a handler into the generic
// 500 envelope. The full fault and stack are logged server-side; the
// client only sees the stringified fault message. No classification and
// no retry: a recovered fault is always a definitive failure for its
// request.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log := logger.FromRequest(r)
				log.Error().
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Msg("unhandled fault in handler")

				writeError(w, r, http.StatusInternalServerError, models.ErrorResponse{
					Error:   "Internal Server Error",
					Message: fmt.Sprintf("%v", rec),
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
