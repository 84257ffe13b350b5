package handler

import (
	"github.com/MKhiriev/go-workers-bot/internal/adapter"
	"github.com/MKhiriev/go-workers-bot/internal/config"
	"github.com/MKhiriev/go-workers-bot/internal/handler/http"
	"github.com/MKhiriev/go-workers-bot/internal/handler/telegram"
	"github.com/MKhiriev/go-workers-bot/internal/logger"
	"github.com/MKhiriev/go-workers-bot/internal/service"
)

// Handlers groups the inbound transports. Telegram is always present; HTTP
// is created when an address is configured and carries the webhook route
// only in webhook mode.
type Handlers struct {
	Telegram *telegram.Handler
	HTTP     *http.Handler
}

func NewHandlers(services *service.Services, messenger adapter.Messenger, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil || messenger == nil {
		return nil, errNoHandlersAreCreated
	}

	handlers := &Handlers{
		Telegram: telegram.NewHandler(services, messenger, cfg.Server, logger),
	}

	webhookMode := cfg.Telegram.WebhookURL != ""
	if cfg.Server.HTTPAddress == "" && webhookMode {
		return nil, errWebhookNeedsHTTP
	}

	if cfg.Server.HTTPAddress != "" {
		var updates http.UpdateHandler
		if webhookMode {
			updates = handlers.Telegram
		}
		handlers.HTTP = http.NewHandler(services, updates, cfg.Telegram.BotToken, logger)
	}

	return handlers, nil
}
