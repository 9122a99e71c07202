package server

import (
	"context"
	"net"
	"time"

	"github.com/MKhiriev/go-securnote/internal/config"
	"github.com/MKhiriev/go-securnote/internal/handler"
	"github.com/MKhiriev/go-securnote/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may take to finish.
const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	listen     func(network, address string) (net.Listener, error)
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		listen:     net.Listen,
		logger:     logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ln, err := s.listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(ln)
	}()

	select {
	case err = <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err = s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info().Msg("server Shutdown gracefully")

	return <-serveErr
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.shutdown(ctx)
}
