package http

import (
	"net"
	"net/http"

	"github.com/MKhiriev/go-securnote/internal/utils"
)

// withRemoteAddr stores the client address in the request context so the
// activity log can record it. It runs after middleware.RealIP, which already
// honours X-Forwarded-For and X-Real-IP.
func (h *Handler) withRemoteAddr(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		addr := r.RemoteAddr
		if host, _, err := net.SplitHostPort(addr); err == nil {
			addr = host
		}

		next.ServeHTTP(w, r.WithContext(utils.WithRemoteAddr(r.Context(), addr)))
	})
}
