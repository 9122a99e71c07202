package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-securnote/internal/config"
	"github.com/MKhiriev/go-securnote/internal/logger"
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

// newHTTPServer applies the request timeout to reads and writes; handlers
// that derive keys stay well below it.
func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           http.TimeoutHandler(handler, cfg.RequestTimeout, "request timed out"),
			ReadHeaderTimeout: cfg.RequestTimeout,
			ReadTimeout:       cfg.RequestTimeout,
			WriteTimeout:      cfg.RequestTimeout + time.Second,
			IdleTimeout:       2 * time.Minute,
		},
		logger: logger,
	}
}

// serve blocks on ln until the server is shut down.
func (h *httpServer) serve(ln net.Listener) error {
	h.logger.Info().Str("address", ln.Addr().String()).Msg("HTTP server listening")
	if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server Serve: %w", err)
	}
	return nil
}

func (h *httpServer) shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server Shutdown")
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}
	return nil
}
