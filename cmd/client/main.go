package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-securnote/internal/client"
	"github.com/MKhiriev/go-securnote/internal/config"
	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewClientLogger(os.Stderr, "securnote-client")

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 2
	}

	if len(args) > 0 && args[0] == "version" {
		printBuildInfo()
		return 0
	}

	app, err := client.NewApp(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = app.Run(ctx, args); err != nil {
		if errors.Is(err, client.ErrUsage) {
			return 2
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

func printBuildInfo() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
