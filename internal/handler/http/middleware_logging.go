package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-securnote/internal/logger"
)

// withLogging writes one access log line per request. Credentials never
// reach the log: only the path, method and outcome are recorded.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		logger.FromRequest(r).Info().
			Str("path", r.URL.Path).
			Str("method", r.Method).
			Str("remote_addr", r.RemoteAddr).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Msg("request served")
	})
}
