package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-securnote/internal/ca"
	"github.com/MKhiriev/go-securnote/internal/config"
	"github.com/MKhiriev/go-securnote/internal/handler"
	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/internal/server"
	"github.com/MKhiriev/go-securnote/internal/service"
	"github.com/MKhiriev/go-securnote/internal/store"
	"github.com/MKhiriev/go-securnote/internal/workers"
	"github.com/MKhiriev/go-securnote/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("securnote-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	authority, err := newAuthority(storages, cfg.Security, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating certificate authority")
	}

	services := service.NewServices(storages, authority, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var wg sync.WaitGroup
	wg.Go(func() {
		workers.NewWorkers(services.Identity, cfg.Workers, log).Run(ctx)
	})

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	stop()
	wg.Wait()
	log.Info().Msg("server stopped")
}

// newAuthority keeps the CA key on disk when a path is configured and
// generates an ephemeral one otherwise.
func newAuthority(storages *store.Storages, cfg config.Security, log *logger.Logger) (*ca.Authority, error) {
	if cfg.CAKeyPath == "" {
		log.Warn().Msg("no CA key path configured, certificates will not survive a restart")
		return ca.New(storages.Revocations, cfg, log)
	}
	return ca.LoadOrCreate(cfg.CAKeyPath, storages.Revocations, cfg, log)
}

func printBuildInfo() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
