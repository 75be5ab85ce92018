package main

import (
	"fmt"
	"os"

	"github.com/koji-m/Bluedog/internal/adapter"
	"github.com/koji-m/Bluedog/internal/client"
	"github.com/koji-m/Bluedog/internal/config"
	"github.com/koji-m/Bluedog/internal/logger"
	"github.com/koji-m/Bluedog/internal/service"
	"github.com/koji-m/Bluedog/internal/store"
	"github.com/koji-m/Bluedog/internal/tui"
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

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("bluedog-client", cfg.App.LogFile)
	if cfg.App.LogLevel != "" && !logger.SetLevel(cfg.App.LogLevel) {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}

	newAdapter, err := adapter.NewXRPCFactory(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create xrpc adapter")
	}

	services := service.NewClientServices(cfg.Feed, store.NewSessionFileStorageFactory(log), newAdapter, nil, log)
	backend := client.NewBackend(services, log)

	ui, err := tui.New(backend, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(backend, ui, cfg.App.DataDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "client run error: %v\n", err)
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
