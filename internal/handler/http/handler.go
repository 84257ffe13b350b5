package http

import (
	"context"

	"github.com/MKhiriev/go-workers-bot/internal/logger"
	"github.com/MKhiriev/go-workers-bot/internal/service"
	"github.com/MKhiriev/go-workers-bot/models"
)

// UpdateHandler accepts a decoded Telegram update for asynchronous
// processing.
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update models.Update)
}

type Handler struct {
	services *service.Services
	updates  UpdateHandler

	// webhookSecret is the path segment Telegram posts updates to. The bot
	// token is used so the route cannot be guessed.
	webhookSecret string

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. A nil updates disables the webhook
// route.
func NewHandler(services *service.Services, updates UpdateHandler, webhookSecret string, logger *logger.Logger) *Handler {
	logger.Info().Bool("webhook", updates != nil).Msg("http handler created")
	return &Handler{
		services:      services,
		updates:       updates,
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}
