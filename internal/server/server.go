package server

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/MKhiriev/go-workers-bot/internal/adapter"
	"github.com/MKhiriev/go-workers-bot/internal/config"
	"github.com/MKhiriev/go-workers-bot/internal/handler"
	myHTTP "github.com/MKhiriev/go-workers-bot/internal/handler/http"
	"github.com/MKhiriev/go-workers-bot/internal/handler/telegram"
	"github.com/MKhiriev/go-workers-bot/internal/logger"
	"github.com/MKhiriev/go-workers-bot/internal/workers"
	"golang.org/x/sync/errgroup"
)

const defaultShutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	updates    *telegram.Handler
	telegram   adapter.TelegramAdapter

	// webhookURL is registered with Telegram on start; empty in polling mode.
	webhookURL      string
	shutdownTimeout time.Duration

	logger *logger.Logger
}

// NewServer assembles the process. In webhook mode Telegram posts updates to
// the HTTP handler; otherwise an UpdatePoller worker fetches them.
func NewServer(handlers *handler.Handlers, tg adapter.TelegramAdapter, cfg config.StructuredConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	if handlers == nil || handlers.Telegram == nil {
		return nil, errNoTelegramHandler
	}

	s := &server{
		workers:         workers.NewWorkers(),
		updates:         handlers.Telegram,
		telegram:        tg,
		shutdownTimeout: cfg.Server.ShutdownTimeout,
		logger:          logger,
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = defaultShutdownTimeout
	}

	if handlers.HTTP != nil {
		s.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg.Server, logger)
	}

	if cfg.Telegram.WebhookURL != "" {
		s.webhookURL = webhookURL(cfg.Telegram.WebhookURL, cfg.Telegram.BotToken)
	} else {
		s.workers.Add(workers.NewUpdatePoller(tg, handlers.Telegram, cfg.Telegram, logger))
	}

	if s.httpServer == nil && s.workers.Len() == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func webhookURL(base, token string) string {
	return strings.TrimRight(base, "/") + myHTTP.WebhookPathPrefix + token
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if s.webhookURL != "" {
		if err := s.telegram.SetWebhook(ctx, s.webhookURL); err != nil {
			return fmt.Errorf("error registering webhook: %w", err)
		}
		s.logger.Info().Msg("webhook registered")
	}

	g, gctx := errgroup.WithContext(ctx)

	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		g.Go(s.httpServer.RunServer)
	}
	if s.workers.Len() > 0 {
		s.logger.Info().Int("workers", s.workers.Len()).Msg("Launching workers")
		g.Go(func() error {
			return s.workers.Run(gctx)
		})
	}

	// listen for stop signals or a failed component
	g.Go(func() error {
		<-gctx.Done()
		return s.shutdown()
	})

	err := g.Wait()

	s.logger.Info().Msg("waiting for in-flight updates")
	s.updates.Wait()

	if err != nil {
		return err
	}
	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) shutdown() error {
	if s.httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
