package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-ID"

// withRequestID assigns every inbound request an identifier (reusing
// the client-supplied X-Request-ID when present), attaches a child
// logger carrying it to the request context, and echoes it back in the
// response. Downstream middleware and handlers retrieve the scoped
// logger via [logger.FromRequest].
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var requestID string
		if fromHeader := r.Header.Get(requestIDHeader); fromHeader != "" {
			requestID = fromHeader
		} else {
			requestID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}
