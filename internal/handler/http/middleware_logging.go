package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-shop-api/internal/logger"
)

// maxUserAgentLogLength bounds the user-agent fragment written to the
// access log.
const maxUserAgentLogLength = 50

// withLogging records an entry line for every inbound request and an
// exit line with the response status and elapsed time. It must sit
// outside the recovery middleware so that the exit line is written even
// when the handler panicked and the fault was converted downstream.
//
// The middleware never alters the request or response payload; a
// JSON request body is read for logging and restored before the
// handler runs.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		entry := log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_addr", r.RemoteAddr).
			Str("user_agent", truncate(r.UserAgent(), maxUserAgentLogLength))

		if query := r.URL.Query(); len(query) > 0 {
			entry = entry.Interface("query_params", query)
		}

		if isJSONRequest(r) {
			if body := peekBody(r); len(body) > 0 && json.Valid(body) {
				entry = entry.RawJSON("body", body)
			}
		}

		entry.Msg("incoming request")

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Msg("request completed")
	})
}

// isJSONRequest reports whether the request declares a JSON body,
// including +json media-type suffixes.
func isJSONRequest(r *http.Request) bool {
	mediaType, _, _ := strings.Cut(r.Header.Get("Content-Type"), ";")
	contentType := strings.TrimSpace(strings.ToLower(mediaType))

	return contentType == "application/json" || strings.HasSuffix(contentType, "+json")
}

// peekBody reads the full request body and puts an equivalent reader
// back so the downstream handler sees the request untouched.
func peekBody(r *http.Request) []byte {
	if r.Body == nil {
		return nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	return body
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
