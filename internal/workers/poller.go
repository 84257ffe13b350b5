// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-workers-bot/internal/adapter"
	"github.com/MKhiriev/go-workers-bot/internal/config"
	"github.com/MKhiriev/go-workers-bot/internal/logger"
)

const (
	defaultPollTimeout = 30 * time.Second
	minBackoff         = time.Second
	maxBackoff         = 30 * time.Second
)

// UpdatePoller long-polls getUpdates and hands every update to the update
// handler. The offset advances past each received update, so an update is
// confirmed to Telegram by the next poll.
type UpdatePoller struct {
	telegram adapter.TelegramAdapter
	handler  UpdateHandler

	timeout    time.Duration
	minBackoff time.Duration
	maxBackoff time.Duration

	logger *logger.Logger
}

func NewUpdatePoller(telegram adapter.TelegramAdapter, handler UpdateHandler, cfg config.Telegram, logger *logger.Logger) *UpdatePoller {
	timeout := cfg.PollTimeout
	if timeout <= 0 {
		timeout = defaultPollTimeout
	}

	return &UpdatePoller{
		telegram:   telegram,
		handler:    handler,
		timeout:    timeout,
		minBackoff: minBackoff,
		maxBackoff: maxBackoff,
		logger:     logger,
	}
}

// Run removes any registered webhook, since Telegram refuses getUpdates while
// one is set, and polls until ctx is cancelled. Failed polls are retried with
// exponential backoff.
func (p *UpdatePoller) Run(ctx context.Context) error {
	if err := p.telegram.DeleteWebhook(ctx); err != nil {
		return fmt.Errorf("error removing webhook before polling: %w", err)
	}

	p.logger.Info().Dur("timeout", p.timeout).Msg("polling for updates")

	var offset int64
	backoff := p.minBackoff
	for {
		updates, err := p.telegram.GetUpdates(ctx, offset, p.timeout)
		if ctx.Err() != nil {
			p.logger.Info().Msg("update poller stopped")
			return nil
		}
		if err != nil {
			p.logger.Err(err).Str("func", "*UpdatePoller.Run").Dur("retry_in", backoff).Msg("error polling updates")
			if !sleep(ctx, backoff) {
				return nil
			}
			backoff = min(backoff*2, p.maxBackoff)
			continue
		}
		backoff = p.minBackoff

		for _, update := range updates {
			p.handler.HandleUpdate(ctx, update)
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}
		}
	}
}

// sleep waits for d and reports false if ctx was cancelled first.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
