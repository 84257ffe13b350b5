package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-workers-bot/internal/adapter"
	"github.com/MKhiriev/go-workers-bot/internal/config"
	"github.com/MKhiriev/go-workers-bot/internal/handler"
	"github.com/MKhiriev/go-workers-bot/internal/logger"
	"github.com/MKhiriev/go-workers-bot/internal/server"
	"github.com/MKhiriev/go-workers-bot/internal/service"
	"github.com/MKhiriev/go-workers-bot/internal/store"
	"github.com/MKhiriev/go-workers-bot/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-workers-bot")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.Version
	}

	log.Debug().
		Str("telegram_api", cfg.Telegram.APIURL).
		Bool("webhook", cfg.Telegram.WebhookURL != "").
		Str("cloudflare_api", cfg.Cloudflare.APIURL).
		Str("http_address", cfg.Server.HTTPAddress).
		Int("max_workers_per_user", cfg.Bot.MaxWorkersPerUser).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	telegram, err := adapter.NewTelegramAdapter(cfg.Telegram, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating telegram adapter")
	}
	cloudflare, err := adapter.NewCloudflareAdapterFactory(cfg.Cloudflare, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating cloudflare adapter")
	}
	scripts, err := adapter.NewScriptFetcher(cfg.GitHub, cfg.Cloudflare.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating script fetcher")
	}

	services, err := service.NewServices(storages, service.Adapters{
		Cloudflare: cloudflare,
		Scripts:    scripts,
		Messenger:  telegram,
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, telegram, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, telegram, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err := srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
