package main

import (
	"context"
	"fmt"
	"os"

	"github.com/koji-m/Bluedog/internal/adapter"
	"github.com/koji-m/Bluedog/internal/client"
	"github.com/koji-m/Bluedog/internal/config"
	myHTTP "github.com/koji-m/Bluedog/internal/handler/http"
	"github.com/koji-m/Bluedog/internal/logger"
	"github.com/koji-m/Bluedog/internal/metrics"
	"github.com/koji-m/Bluedog/internal/server"
	"github.com/koji-m/Bluedog/internal/service"
	"github.com/koji-m/Bluedog/internal/store"
	"github.com/koji-m/Bluedog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("bluedog-bridge")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.LogLevel != "" && !logger.SetLevel(cfg.App.LogLevel) {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	newAdapter, err := adapter.NewXRPCFactory(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create xrpc adapter")
	}

	var (
		m        *metrics.Metrics
		observer service.FeedObserver
	)
	if !cfg.Bridge.DisableMetrics {
		m = metrics.New()
		observer = m
	}

	services := service.NewClientServices(cfg.Feed, store.NewSessionFileStorageFactory(log), newAdapter, observer, log)
	backend := client.NewBackend(services, log)

	// The GUI may re-initialise through /api/init; starting initialised lets
	// a resumed session work straight away.
	if cfg.App.DataDir != "" {
		if res := backend.Initialize(context.Background(), cfg.App.DataDir); !res.Succeeded() {
			log.Warn().Str("dir", cfg.App.DataDir).Str("reason", res.Message).Msg("initial data dir rejected")
		}
	}

	handler := myHTTP.NewHandler(backend, m, buildInfo, log)

	srv, err := server.NewServer(handler.Init(), cfg.Bridge, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
