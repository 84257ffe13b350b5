// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package telegram

import (
	"context"
	"runtime/debug"
	"sync"
	"time"

	"github.com/MKhiriev/go-workers-bot/internal/adapter"
	"github.com/MKhiriev/go-workers-bot/internal/app"
	"github.com/MKhiriev/go-workers-bot/internal/config"
	"github.com/MKhiriev/go-workers-bot/internal/logger"
	"github.com/MKhiriev/go-workers-bot/internal/service"
	"github.com/MKhiriev/go-workers-bot/internal/utils"
	"github.com/MKhiriev/go-workers-bot/models"
)

const defaultEventTimeout = 60 * time.Second

type Handler struct {
	conversation service.ConversationService
	messenger    adapter.Messenger
	queues       *userQueues
	eventTimeout time.Duration
	logger       *logger.Logger

	wg sync.WaitGroup
}

func NewHandler(services *service.Services, messenger adapter.Messenger, cfg config.Server, logger *logger.Logger) *Handler {
	timeout := cfg.EventTimeout
	if timeout <= 0 {
		timeout = defaultEventTimeout
	}

	return &Handler{
		conversation: services.ConversationService,
		messenger:    messenger,
		queues:       newUserQueues(),
		eventTimeout: timeout,
		logger:       logger,
	}
}

// HandleUpdate schedules update and returns immediately. Updates of one user
// are processed one at a time in the order HandleUpdate received them.
// Cancelling ctx does not abort the update; processing is bounded by the
// event timeout instead.
func (h *Handler) HandleUpdate(ctx context.Context, update models.Update) {
	h.wg.Add(1)

	userID := update.UserID()
	if userID == 0 {
		go func() {
			defer h.wg.Done()
			h.process(ctx, update)
		}()
		return
	}

	if h.queues.push(userID, queuedUpdate{ctx: ctx, update: update}) {
		go h.drain(userID)
	}
}

func (h *Handler) drain(userID int64) {
	for {
		item, ok := h.queues.next(userID)
		if !ok {
			return
		}
		h.process(item.ctx, item.update)
		h.wg.Done()
	}
}

// Wait blocks until every update handed to HandleUpdate has been processed.
func (h *Handler) Wait() {
	h.wg.Wait()
}

func (h *Handler) process(parent context.Context, update models.Update) {
	userID := update.UserID()

	traceID, ok := utils.GetTraceIDFromContext(parent)
	if !ok {
		traceID = utils.NewTraceID()
	}
	log := h.logger.WithTrace(traceID, userID)

	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), h.eventTimeout)
	defer cancel()
	ctx = utils.WithTraceID(log.WithContext(ctx), traceID)

	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Int64("update_id", update.UpdateID).
				Msg("recovered from panic while processing update")
			h.replyGenericError(ctx, chatOf(update))
		}
	}()

	start := time.Now()
	err := h.dispatch(ctx, update)
	if err != nil {
		log.Error().Err(err).Int64("update_id", update.UpdateID).Msg("update processing failed")
		return
	}

	log.Debug().
		Int64("update_id", update.UpdateID).
		Dur("duration", time.Since(start)).
		Msg("update processed")
}

func (h *Handler) dispatch(ctx context.Context, update models.Update) error {
	switch {
	case update.CallbackQuery != nil:
		return h.conversation.HandleCallback(ctx, callbackFrom(update.CallbackQuery))

	case update.Message != nil && update.Message.From != nil && update.Message.Text != "":
		msg := update.Message
		if name, ok := parseCommand(msg.Text); ok {
			return h.conversation.HandleCommand(ctx, commandFrom(name, msg))
		}
		return h.conversation.HandleMessage(ctx, messageFrom(msg))

	default:
		logger.FromContext(ctx).Debug().Int64("update_id", update.UpdateID).Msg("ignoring update without text or callback")
		return nil
	}
}

func (h *Handler) replyGenericError(ctx context.Context, chatID int64) {
	if chatID == 0 {
		return
	}

	err := h.messenger.SendMessage(ctx, models.OutgoingMessage{ChatID: chatID, Text: app.GenericErrorText})
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Int64("chat_id", chatID).Msg("failed to send error reply")
	}
}
